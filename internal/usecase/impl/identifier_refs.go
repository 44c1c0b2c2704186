package impl

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"scrobbler/internal/domain/entity"
)

const idsKey = "ids"

// flatIdentifierRefs reads every entry of metadata["ids"] as a (source, value) pair.
func flatIdentifierRefs(logger *slog.Logger, metadata entity.Metadata) []entity.IdentifierRef {
	ids, ok := identifierGroup(logger, metadata)
	if !ok {
		return nil
	}

	refs := make([]entity.IdentifierRef, 0, ids.Len())
	for _, field := range ids.Fields() {
		if ref, ok := toIdentifierRef(logger, field.Key, field.Value); ok {
			refs = append(refs, ref)
		}
	}

	return refs
}

// nestedIdentifierRefs expands only the entries of metadata["ids"] whose value is an object,
// reading each inner entry as a pair. Flat entries are skipped.
func nestedIdentifierRefs(logger *slog.Logger, metadata entity.Metadata) []entity.IdentifierRef {
	ids, ok := identifierGroup(logger, metadata)
	if !ok {
		return nil
	}

	var refs []entity.IdentifierRef
	for _, group := range ids.Fields() {
		if !isJSONObject(group.Value) {
			logger.Debug("Ignoring flat episode identifier", slog.String("source", group.Key))

			continue
		}

		var inner entity.Metadata
		if err := json.Unmarshal(group.Value, &inner); err != nil {
			logger.Debug("Ignoring malformed identifier group", slog.String("group", group.Key), slog.Any("error", err))

			continue
		}
		for _, field := range inner.Fields() {
			if ref, ok := toIdentifierRef(logger, field.Key, field.Value); ok {
				refs = append(refs, ref)
			}
		}
	}

	return refs
}

func identifierGroup(logger *slog.Logger, metadata entity.Metadata) (entity.Metadata, bool) {
	raw, ok := metadata.Get(idsKey)
	if !ok || !isJSONObject(raw) {
		return entity.Metadata{}, false
	}

	var ids entity.Metadata
	if err := json.Unmarshal(raw, &ids); err != nil {
		logger.Debug("Ignoring malformed ids", slog.Any("error", err))

		return entity.Metadata{}, false
	}

	return ids, true
}

// toIdentifierRef accepts integers and strings holding integers; anything else cannot live in the integer namespace.
func toIdentifierRef(logger *slog.Logger, source string, raw json.RawMessage) (entity.IdentifierRef, bool) {
	if source == "" || len(source) > entity.MaxIdentifierSourceLength {
		logger.Debug("Skipping identifier with unusable source", slog.String("source", source))

		return entity.IdentifierRef{}, false
	}

	value, ok := parseIdentifierValue(raw)
	if !ok {
		logger.Debug("Skipping non-integer identifier", slog.String("source", source), slog.String("value", string(raw)))

		return entity.IdentifierRef{}, false
	}

	return entity.IdentifierRef{Source: source, Value: value}, true
}

func parseIdentifierValue(raw json.RawMessage) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return 0, false
	}

	switch v := decoded.(type) {
	case json.Number:
		n, err := v.Int64()

		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)

		return n, err == nil
	default:
		return 0, false
	}
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '{'
}
