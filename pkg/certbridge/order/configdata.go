package order

import (
	"strings"

	"github.com/goccy/go-json"
)

// DecodeConfigBlob decodes an order's configuration blob. Structured JSON is
// tried first, then the legacy flattened "k1=v1|k2=v2" form. A corrupt or
// absent blob is a normal, recoverable condition and yields an empty map;
// no further legacy formats are guessed.
func DecodeConfigBlob(blob []byte) map[string]any {
	decoded := map[string]any{}
	if len(blob) == 0 {
		return decoded
	}

	if err := json.Unmarshal(blob, &decoded); err == nil {
		return decoded
	}

	decoded = map[string]any{}
	for _, pair := range strings.Split(string(blob), "|") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && kv[0] != "" {
			decoded[kv[0]] = kv[1]
		}
	}
	return decoded
}

func EncodeConfigBlob(configData map[string]any) []byte {
	raw, err := json.Marshal(configData)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
