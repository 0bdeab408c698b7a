package docs

// knownFormats explains OpenAPI string formats that may appear in the ingress schema
var knownFormats = map[string]string{
	"hostname": "a DNS host name as defined by RFC 1123, without a port or wildcard.",
	"uri":      "an absolute URI.",
	"ipv4":     "an IPv4 address.",
	"ipv6":     "an IPv6 address.",
	"duration": `a duration like "30s" or "5m".`,
}
