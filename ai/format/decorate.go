package format

import (
	"regexp"
	"strings"
)

// Display decorations applied to section bodies after segmentation. Analysis
// output gets metric and risk highlighting; both kinds get blank-line runs
// collapsed. Fenced code is left untouched.
var (
	scoreRe      = regexp.MustCompile(`(?i)(\w+\s+score:?\s*\d+(?:\.\d+)?(?:/\d+)?)`)
	complexityRe = regexp.MustCompile(`(?i)(complexity:?\s*(?:low|medium|high))`)
	riskRe       = regexp.MustCompile(`\b(LOW|MEDIUM|HIGH|CRITICAL)\b`)
)

func decorateBody(body string, kind Kind) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	fenceDelim := ""
	blankRun := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inFence {
			out = append(out, line)
			if strings.HasPrefix(trimmed, fenceDelim) {
				inFence = false
			}
			continue
		}

		if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
			inFence = true
			fenceDelim = m[1]
			blankRun = 0
			out = append(out, line)
			continue
		}

		if trimmed == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			out = append(out, line)
			continue
		}
		blankRun = 0

		if kind == KindAnalysis {
			line = highlightAnalysis(line)
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// highlightAnalysis wraps metric readings in code spans and bolds risk
// levels so they stand out in the rendered report.
func highlightAnalysis(line string) string {
	line = scoreRe.ReplaceAllString(line, "`$1`")
	line = complexityRe.ReplaceAllString(line, "`$1`")
	line = riskRe.ReplaceAllString(line, "**$1**")
	return line
}
