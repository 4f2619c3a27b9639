// Package contracts holds the small interfaces the application shell accepts,
// so pkg/app never depends on the search handlers directly.
package contracts

import "github.com/julienschmidt/httprouter"

// Handler is a route-owning HTTP surface. The search handler and the health
// handler both implement it; pkg/app mounts whatever it is given.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
