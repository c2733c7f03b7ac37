package usecase

import (
	"regexp"
	"strings"

	"github.com/tntx/fleetport/internal/adapter/trimble"
)

// Road-call references are embedded in free-text comment lines as
// "RC<number> / <id>", e.g. "Unit towed, see RC12345 / 67890".
var roadCallPattern = regexp.MustCompile(`RC(\d+)\s*/\s*(\d+)`)

// extractRoadCall scans an order's comment lines for a road-call reference and
// returns the road-call number (with the RC prefix restored) and id. When
// several comment lines match, the last one wins, matching upstream behavior.
// Both results are empty when no line matches.
func extractRoadCall(sections []trimble.RawSection) (num, id string) {
	for _, section := range sections {
		for _, line := range section.Lines {
			if line.LineType != "COMMENT" || !strings.Contains(line.Description, "RC") {
				continue
			}
			if m := roadCallPattern.FindStringSubmatch(line.Description); m != nil {
				num = "RC" + m[1]
				id = m[2]
			}
		}
	}
	return num, id
}

// roadCallLink builds the portal deep link for a road call. The path segment
// must match the upstream portal's routing scheme exactly.
func roadCallLink(base, roadCallID string) string {
	if roadCallID == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/road-calls/road-call-detail/" + roadCallID
}
