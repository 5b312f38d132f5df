package webhook

import (
	"encoding/json"
	"strconv"
	"strings"

	"sheetcut_backend/internal/ecwid"
)

// Order-event payloads arrive in several shapes depending on the event source.
// Extraction is modeled as ordered lists of candidate locations tried in
// sequence, so each shape stays independently testable.

// itemListExtractors are tried in order; the first non-empty list wins.
var itemListExtractors = []func(map[string]any) []any{
	func(p map[string]any) []any { return listAt(p, "order", "items") },
	func(p map[string]any) []any { return listAt(p, "data", "order", "items") },
	func(p map[string]any) []any { return listAt(p, "items") },
}

// idFieldExtractors are tried in order; the first defined value wins.
var idFieldExtractors = []func(map[string]any) any{
	func(item map[string]any) any { return item["productId"] },
	func(item map[string]any) any {
		if product, ok := item["product"].(map[string]any); ok {
			return product["id"]
		}
		return nil
	},
	func(item map[string]any) any { return item["id"] },
}

// ExtractItems pulls the order line items out of an event envelope. The first
// location holding a non-empty list is used; entries that are not objects are
// dropped afterwards.
func ExtractItems(payload map[string]any) []map[string]any {
	for _, extract := range itemListExtractors {
		raw := extract(payload)
		if len(raw) == 0 {
			continue
		}
		items := make([]map[string]any, 0, len(raw))
		for _, entry := range raw {
			if item, ok := entry.(map[string]any); ok {
				items = append(items, item)
			}
		}
		return items
	}
	return nil
}

// IsOneOff reports whether the item carries the one-off marker attribute.
// Both the attribute name and its value match case-insensitively.
func IsOneOff(item map[string]any) bool {
	for _, entry := range itemAttributes(item) {
		attr, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := attr["name"].(string)
		value, _ := attr["value"].(string)
		if strings.EqualFold(name, ecwid.MarkerAttribute) && strings.EqualFold(value, "true") {
			return true
		}
	}
	return false
}

// ResolveProductID resolves the deletion target for an item, normalized to a
// string.
func ResolveProductID(item map[string]any) (string, bool) {
	for _, extract := range idFieldExtractors {
		if id, ok := normalizeID(extract(item)); ok {
			return id, true
		}
	}
	return "", false
}

// CollectTargets returns the unique product IDs qualifying for deletion,
// in first-seen order.
func CollectTargets(items []map[string]any) []string {
	seen := make(map[string]struct{})
	targets := make([]string, 0)
	for _, item := range items {
		if !IsOneOff(item) {
			continue
		}
		id, ok := ResolveProductID(item)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}
	return targets
}

// itemAttributes resolves the attribute set for an item: item-level attributes
// first, then the nested product's attributes.
func itemAttributes(item map[string]any) []any {
	if attrs, ok := item["attributes"].([]any); ok {
		return attrs
	}
	if product, ok := item["product"].(map[string]any); ok {
		if attrs, ok := product["attributes"].([]any); ok {
			return attrs
		}
	}
	return nil
}

func listAt(payload map[string]any, path ...string) []any {
	current := any(payload)
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	list, _ := current.([]any)
	return list
}

func normalizeID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		id = strings.TrimSpace(id)
		return id, id != ""
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case json.Number:
		return id.String(), true
	}
	return "", false
}
