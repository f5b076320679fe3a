package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/clubechip/signup-api/internal/form"
	"github.com/clubechip/signup-api/internal/http/v1/catalog"
	registrationhandler "github.com/clubechip/signup-api/internal/http/v1/registration"
	addresssvc "github.com/clubechip/signup-api/internal/service/address"
	signupsvc "github.com/clubechip/signup-api/internal/service/signup"
	taxidsvc "github.com/clubechip/signup-api/internal/service/taxid"
)

// Register wires all v1 HTTP routes into the provided API router.
func Register(
	api huma.API,
	addressSvc addresssvc.Service,
	taxidSvc taxidsvc.Service,
	signupSvc signupsvc.Service,
	signupToken string,
	plans form.Catalog,
	regions []string,
) {
	registrationhandler.Register(api, addressSvc, taxidSvc, signupSvc, signupToken)
	catalog.Register(api, plans, regions)
}
