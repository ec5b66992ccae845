package models

// AclFileExtension is appended to a route to name both the remote asset and
// the local file.
const AclFileExtension = ".acl"

// AclFile is a routing rule list persisted for one route. Content is opaque
// text; it is overwritten wholesale on every successful sync.
type AclFile struct {
	Route   string `json:"route"`
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// AclFileName returns "<route>.acl".
func AclFileName(route string) string {
	return route + AclFileExtension
}
