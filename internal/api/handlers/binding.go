package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report JSON parameter names, not Go field names, in validation errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// TargetRequest carries the host/service target every control verb starts
// with. Values are strings on the wire.
type TargetRequest struct {
	Host        string `json:"host" binding:"required"`
	Service     string `json:"service"`
	ServicesToo string `json:"services_too" binding:"omitempty,oneof=true false TRUE FALSE"`
}

// Recursive reports whether services_too was set to true.
func (r TargetRequest) Recursive() bool {
	return strings.EqualFold(r.ServicesToo, "true")
}

// DowntimeRequest is the body of schedule_downtime.
type DowntimeRequest struct {
	TargetRequest
	Duration string `json:"duration" binding:"required"`
	Author   string `json:"author"`
	Comment  string `json:"comment"`
}

// CancelRequest is the body of cancel_downtime. The target is optional when
// a downtime id is given in the path.
type CancelRequest struct {
	Host        string `json:"host"`
	Service     string `json:"service"`
	ServicesToo string `json:"services_too" binding:"omitempty,oneof=true false TRUE FALSE"`
}

// AckRequest is the body of acknowledge_problem. Sticky and notify default
// to true, persistent to false.
type AckRequest struct {
	TargetRequest
	Comment    string `json:"comment" binding:"required"`
	Author     string `json:"author"`
	Sticky     string `json:"sticky" binding:"omitempty,oneof=TRUE FALSE true false"`
	Notify     string `json:"notify" binding:"omitempty,oneof=TRUE FALSE true false"`
	Persistent string `json:"persistent" binding:"omitempty,oneof=TRUE FALSE true false"`
}

// bindParams decodes the JSON parameter object into obj and validates it. An
// empty body is treated as an empty parameter object.
func bindParams(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return binding.Validator.ValidateStruct(obj)
	}
	return c.ShouldBindJSON(obj)
}

// respondBindError reports a binding failure in the envelope.
func respondBindError(c *gin.Context, err error) {
	respondFailure(c, http.StatusBadRequest, bindErrorMessage(err))
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Sprintf("Missing required parameter '%s'", fe.Field())
		}
		return fmt.Sprintf("Invalid value for parameter '%s': %v", fe.Field(), fe.Value())
	}
	return fmt.Sprintf("Invalid request body: %v", err)
}

// objectID parses the optional numeric id path segment.
func objectID(c *gin.Context) (int64, bool, error) {
	raw := strings.Trim(c.Param("id"), "/")
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false, fmt.Errorf("invalid object id '%s'", raw)
	}
	return id, true, nil
}

// parseBool reads TRUE/FALSE parameters, falling back to def when unset.
func parseBool(value string, def bool) bool {
	if value == "" {
		return def
	}
	return strings.EqualFold(value, "true")
}
