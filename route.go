package apidocopenapi

import "strings"

// PathTemplate rewrites route parameters in url from ":name" to "{name}".
// Other segments are left untouched.
//
//	/user/:id/posts/:postId -> /user/{id}/posts/{postId}
func PathTemplate(url string) string {
	segments := strings.Split(url, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// routeParams returns the names of the ":name" segments of url.
func routeParams(url string) map[string]bool {
	params := make(map[string]bool)
	for _, s := range strings.Split(url, "/") {
		if strings.HasPrefix(s, ":") {
			params[s[1:]] = true
		}
	}
	return params
}
