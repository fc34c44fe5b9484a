package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"runplay-store/internal/view"
)

func viewHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := parseFilter(c)
		if err != nil {
			writeError(c, err)
			return
		}
		sess := sessionFromContext(c.Request.Context())
		c.JSON(http.StatusOK, view.RenderModel(svc.Filter(criteria), svc.Facets(), criteria, sess.Cart))
	}
}
