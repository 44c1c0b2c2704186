package constants

// EnvDevelop is the env.env value of local development deployments.
const EnvDevelop = "develop"
