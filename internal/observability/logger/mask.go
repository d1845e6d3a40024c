package logger

import "strings"

// Keys whose values carry personal or tax-identifying data. Audit
// metadata and logs never carry them in the clear.
var sensitiveKeys = []string{
	"email",
	"phone",
	"pan_no",
	"gst_no",
	"contact_person",
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return maskLast4(value)
	}
	return value[:1] + "***" + value[at:]
}

// MaskPhone keeps only the last 4 digits.
func MaskPhone(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return maskLast4(value)
}

// MaskTaxID masks PAN and GST numbers, preserving the last 4 characters.
func MaskTaxID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return maskLast4(value)
}

// MaskMetadata returns a deep-copied map with sensitive fields masked.
func MaskMetadata(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		if isSensitiveKey(key) {
			out[key] = maskValue(key, value)
			continue
		}
		out[key] = maskMetadataValue(value)
	}
	return out
}

func maskMetadataValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return MaskMetadata(typed)
	case []any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, maskMetadataValue(entry))
		}
		return items
	default:
		return value
	}
}

func maskValue(key string, value any) any {
	text, ok := value.(string)
	if !ok {
		return "****"
	}
	if strings.Contains(strings.ToLower(key), "email") {
		return MaskEmail(text)
	}
	return maskLast4(text)
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, needle := range sensitiveKeys {
		if strings.Contains(key, needle) {
			return true
		}
	}
	return false
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****" + value
	}
	return "****" + value[len(value)-4:]
}
