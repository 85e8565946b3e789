package viewcache

// Routes whose rendered views are cached per owner
const (
	RouteIndex    = "/"
	RouteContacts = "/contacts"
	RouteCatalog  = "/catalog"
)

// ContactRoute returns the detail route of a contact
func ContactRoute(contactID string) string {
	return RouteContacts + "/" + contactID
}
