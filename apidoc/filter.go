package apidoc

import (
	"slices"
	"strconv"
	"strings"

	ao "github.com/Gobd/apidocopenapi"
	"github.com/asaskevich/govalidator"
)

// Filter selects the endpoints handed to the compiler.
type Filter struct {
	// Groups keeps only endpoints of these groups, compared case-insensitively.
	// Empty keeps every group.
	Groups []string
	// LatestOnly keeps a single version of each method and URL: the highest.
	LatestOnly bool
}

// Apply returns the selected endpoints in their original order.
func (f Filter) Apply(endpoints []ao.Endpoint) []ao.Endpoint {
	latest := map[string]int{}
	if f.LatestOnly {
		for i, ep := range endpoints {
			key := ep.Method + " " + ep.URL
			if j, ok := latest[key]; !ok || CompareVersions(ep.Version, endpoints[j].Version) > 0 {
				latest[key] = i
			}
		}
	}

	out := make([]ao.Endpoint, 0, len(endpoints))
	for i, ep := range endpoints {
		if len(f.Groups) > 0 && !slices.ContainsFunc(f.Groups, func(g string) bool {
			return strings.EqualFold(g, ep.Group)
		}) {
			continue
		}
		if f.LatestOnly && latest[ep.Method+" "+ep.URL] != i {
			continue
		}
		out = append(out, ep)
	}
	return out
}

// CompareVersions orders two apiDoc versions. Semantic versions compare by
// major, minor and patch, a pre-release sorting before its release; anything
// else compares as plain strings and sorts before any semantic version.
func CompareVersions(a, b string) int {
	sa, sb := govalidator.IsSemver(a), govalidator.IsSemver(b)
	switch {
	case sa && !sb:
		return 1
	case !sa && sb:
		return -1
	case !sa && !sb:
		return strings.Compare(a, b)
	}

	coreA, preA := splitSemver(a)
	coreB, preB := splitSemver(b)
	for i := range coreA {
		if coreA[i] != coreB[i] {
			if coreA[i] < coreB[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case preA == preB:
		return 0
	case preA == "":
		return 1
	case preB == "":
		return -1
	}
	return strings.Compare(preA, preB)
}

func splitSemver(v string) ([3]int, string) {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	var pre string
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v, pre = v[:i], v[i+1:]
	}

	var core [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		core[i], _ = strconv.Atoi(part)
	}
	return core, pre
}
