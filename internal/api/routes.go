package api

import (
	"github.com/Annapoorna04/HiperAI/internal/api/middleware"
	"github.com/Annapoorna04/HiperAI/internal/models"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/generate").
			To(handler.Generate).
			Doc("Generate a job description from free-text role details").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerateRequest{}).
			Writes(models.GenerateResponse{}).
			Returns(200, "OK", models.GenerateResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Unprocessable Entity", middleware.ErrorResponse{}).
			Returns(429, "Too Many Requests", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
