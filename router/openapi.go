package router

import (
	"github.com/drblury/decrouter/controller"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI describes the mounted routes as an OpenAPI 3 document. Path
// variables are declared as required strings; pattern constraints are dropped
// from the templated path.
func (rt *Router) OpenAPI(title, version string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, route := range rt.Table() {
		template := controller.BarePath(route.Path)

		item := doc.Paths.Value(template)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(template, item)
		}

		op := openapi3.NewOperation()
		op.OperationID = route.Name
		op.Tags = []string{route.Controller}
		op.Summary = route.Controller + "." + route.Action
		for _, v := range controller.PathVars(route.Path) {
			op.AddParameter(openapi3.NewPathParameter(v.Name).WithSchema(openapi3.NewStringSchema()))
		}
		op.Responses = openapi3.NewResponses()

		item.SetOperation(route.Method, op)
	}

	return doc
}
