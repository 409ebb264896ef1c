package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivoronin/databoxes/internal/filter"
	"github.com/ivoronin/databoxes/internal/pagination"
	"github.com/ivoronin/databoxes/internal/store"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
}

// listDataboxes handles GET /databoxes?take=&skip=&select=&where=.
func (s *Server) listDataboxes(c *gin.Context) {
	fields, err := filter.ParseSelect(c.Query("select"), store.Schema)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	where, err := filter.Parse(c.Query("where"), store.Schema)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	records, err := s.store.List(c.Request.Context(), store.Query{
		Fields: fields,
		Where:  where,
		Take:   pagination.Take(c.Query("take")),
		Skip:   pagination.Skip(c.Query("skip")),
	})
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// getDatabox handles GET /databoxes/:id.
func (s *Server) getDatabox(c *gin.Context) {
	record, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Status: http.StatusNotFound, Error: err.Error()})
		return
	}
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	resp := ErrorResponse{Status: http.StatusBadRequest, Error: err.Error()}
	var ferr *filter.Error
	if errors.As(err, &ferr) {
		resp.Kind = ferr.Kind.String()
	}
	s.log.Debug("rejected query", "error", err, "kind", resp.Kind)
	c.JSON(http.StatusBadRequest, resp)
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status: http.StatusInternalServerError,
		Error:  "internal server error",
	})
}
