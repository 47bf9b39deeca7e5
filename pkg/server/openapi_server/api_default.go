package openapi_server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"GetPoints",
			strings.ToUpper("Get"),
			"/points",
			c.GetPoints,
		},
		{
			"GetPoint",
			strings.ToUpper("Get"),
			"/points/{id}",
			c.GetPoint,
		},
		{
			"GenerateInstructions",
			strings.ToUpper("Post"),
			"/instructions",
			c.GenerateInstructions,
		},
		{
			"GetGraph",
			strings.ToUpper("Get"),
			"/graph",
			c.GetGraph,
		},
	}
}

func setCorsHeaders(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// Answer a CORS preflight request. Returns true if the request was handled
func preflight(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	setCorsHeaders(w, method)
	w.WriteHeader(http.StatusNoContent)
	return true
}

func (c *DefaultApiController) encode(w http.ResponseWriter, r *http.Request, method string, result ImplResponse, err error) {
	setCorsHeaders(w, method)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r, http.MethodPost) {
		return
	}
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	c.encode(w, r, http.MethodPost, result, err)
}

// GetPoints - List all points, only the visible ones with visible=true
func (c *DefaultApiController) GetPoints(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r, http.MethodGet) {
		return
	}
	visibleParam := false
	if raw := r.URL.Query().Get("visible"); raw != "" {
		visible, err := strconv.ParseBool(raw)
		if err != nil {
			c.errorHandler(w, r, &ParsingError{Err: err}, nil)
			return
		}
		visibleParam = visible
	}
	result, err := c.service.GetPoints(r.Context(), visibleParam)
	c.encode(w, r, http.MethodGet, result, err)
}

// GetPoint - Get a point with its floors and rooms
func (c *DefaultApiController) GetPoint(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r, http.MethodGet) {
		return
	}
	idParam := mux.Vars(r)["id"]
	result, err := c.service.GetPoint(r.Context(), idParam)
	c.encode(w, r, http.MethodGet, result, err)
}

// GenerateInstructions - Describe the elevators and stairs of a floor
func (c *DefaultApiController) GenerateInstructions(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r, http.MethodPost) {
		return
	}
	instructionsRequestParam := InstructionsRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&instructionsRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertInstructionsRequestRequired(instructionsRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.GenerateInstructions(r.Context(), instructionsRequestParam)
	c.encode(w, r, http.MethodPost, result, err)
}

// GetGraph - Summarize the navigation graph
func (c *DefaultApiController) GetGraph(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r, http.MethodGet) {
		return
	}
	result, err := c.service.GetGraph(r.Context())
	c.encode(w, r, http.MethodGet, result, err)
}
