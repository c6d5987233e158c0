package dispatcher

import "strings"

// GatewayToolSeparator splits a gateway-qualified identifier such as
// "LambdaTarget___calculate_gds_tds" into target prefix and tool name.
const GatewayToolSeparator = "___"

// ResolveToolName extracts the tool name from a caller-qualified identifier:
// the substring after the first separator occurrence. An identifier without
// the separator resolves to no tool name and the request is rejected upstream.
func ResolveToolName(qualified string) string {
	if _, name, found := strings.Cut(qualified, GatewayToolSeparator); found {
		return name
	}
	return ""
}
