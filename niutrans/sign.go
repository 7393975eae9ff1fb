package niutrans

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
)

// signKeyName is the synthetic parameter the API key is injected under
// before signing. It never travels on the wire.
const signKeyName = "apikey"

// Sign computes the authStr token the API requires on every call: the
// request parameters plus an apikey pair are sorted by key, joined as
// k=v with "&" (no escaping), and the lowercase hex MD5 of the UTF-8
// canonical string is returned. The result depends only on the
// parameter set and the key, never on insertion order.
func Sign(params map[string]string, apiKey string) string {
	canonical := canonicalString(params, apiKey)
	return fmt.Sprintf("%x", md5.Sum([]byte(canonical)))
}

func canonicalString(params map[string]string, apiKey string) string {
	keys := make([]string, 0, len(params)+1)
	for key := range params {
		if key == signKeyName {
			continue
		}
		keys = append(keys, key)
	}
	keys = append(keys, signKeyName)
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		value := params[key]
		if key == signKeyName {
			value = apiKey
		}
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, "&")
}
