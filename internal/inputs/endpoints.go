package inputs

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	idPlaceholder   = ":ID"
	uuidPlaceholder = ":UUID"
	uuidLength      = 36
)

var (
	urlVarRe         = regexp.MustCompile("(const|let|var)\\s+([a-zA-Z0-9_]+)\\s*=\\s*[\"'`](https?://[^\"'`]+)[\"'`]")
	httpCallRe       = regexp.MustCompile(`http\.(get|post|put|patch|del|delete)\(([^,)]+)`)
	templateArgRe    = regexp.MustCompile("[`\"']?\\$\\{[^}]+\\}/?([^`\"']*)[`\"']?")
	leadingExprRe    = regexp.MustCompile("^`?\\$\\{[^}]+\\}`?")
	placeholderRe    = regexp.MustCompile(`^\$\{[^}]+\}$`)
	numericSegmentRe = regexp.MustCompile(`^\d+$`)
)

// isUUIDv4 reports whether seg is a canonical, hyphenated version 4 UUID.
func isUUIDv4(seg string) bool {
	if len(seg) != uuidLength {
		return false
	}

	id, err := uuid.Parse(seg)
	if err != nil {
		return false
	}

	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

// NormalizePath reduces a request target to a stable endpoint path: template
// expressions and UUIDs become :UUID, numeric segments :ID. Absolute URLs are
// cut down to their path.
func NormalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	raw = leadingExprRe.ReplaceAllString(raw, "")
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "`"), "`")

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		raw = u.Path
	}

	segments := strings.Split(raw, "/")
	normalized := make([]string, 0, len(segments))

	for _, seg := range segments {
		switch {
		case seg == "":
			continue
		case placeholderRe.MatchString(seg), isUUIDv4(seg):
			normalized = append(normalized, uuidPlaceholder)
		case numericSegmentRe.MatchString(seg):
			normalized = append(normalized, idPlaceholder)
		default:
			normalized = append(normalized, seg)
		}
	}

	return strings.Join(normalized, "/")
}

func isQuoted(arg string) bool {
	if len(arg) < 2 {
		return false
	}

	for _, q := range []string{`"`, "'", "`"} {
		if strings.HasPrefix(arg, q) && strings.HasSuffix(arg, q) {
			return true
		}
	}

	return false
}

// ExtractEndpoints lists the HTTP calls a k6 script makes as "METHOD /path",
// in the order they appear. Targets held in URL constants are resolved.
func ExtractEndpoints(script string) []string {
	urlVars := make(map[string]string)
	for _, m := range urlVarRe.FindAllStringSubmatch(script, -1) {
		urlVars[m[2]] = NormalizePath(m[3])
	}

	endpoints := make([]string, 0)

	for _, m := range httpCallRe.FindAllStringSubmatch(script, -1) {
		var (
			method = strings.ToUpper(m[1])
			arg    = strings.TrimSpace(m[2])
		)

		if isQuoted(arg) {
			endpoints = append(endpoints, method+" /"+NormalizePath(arg[1:len(arg)-1]))

			continue
		}

		if path, ok := urlVars[arg]; ok {
			endpoints = append(endpoints, method+" /"+path)

			continue
		}

		if tm := templateArgRe.FindStringSubmatch(arg); tm != nil {
			endpoints = append(endpoints, method+" /"+NormalizePath(tm[1]))
		}
	}

	return endpoints
}
