package gamma

import (
	"net/url"
	"strconv"
)

// Shared helpers for turning pointer-optional request fields into query
// parameters. Unset fields are simply omitted; the API applies its own
// defaults.

const defaultPageLimit = 100

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func addStrings(q url.Values, key string, vs []string) {
	for _, v := range vs {
		q.Add(key, v)
	}
}

// mergeExtra copies caller-supplied parameters into q verbatim, with no
// renaming and no validation of the keys.
func mergeExtra(q url.Values, extra url.Values) {
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
}
