package controllers

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/contoso/socialfeed/utils"
)

// OpenAPIController serves the API document. The YAML source is parsed once
// and re-served as JSON on every request.
type OpenAPIController struct {
	specPath string

	once sync.Once
	doc  map[string]interface{}
	err  error
}

// NewOpenAPIController creates a controller serving the given spec file.
func NewOpenAPIController(specPath string) *OpenAPIController {
	return &OpenAPIController{specPath: specPath}
}

// GetSpec returns the OpenAPI document as JSON.
func (o *OpenAPIController) GetSpec(ctx *gin.Context) {
	o.once.Do(o.load)
	if o.err != nil {
		utils.Logger.Sugar().Errorf("openapi spec unavailable: %v", o.err)
		utils.Error(ctx, http.StatusInternalServerError, utils.CodeInternalError, "spec file missing")
		return
	}
	ctx.JSON(http.StatusOK, o.doc)
}

func (o *OpenAPIController) load() {
	raw, err := os.ReadFile(o.specPath)
	if err != nil {
		o.err = fmt.Errorf("read %s: %w", o.specPath, err)
		return
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		o.err = fmt.Errorf("parse %s: %w", o.specPath, err)
		return
	}
	o.doc = doc
}
