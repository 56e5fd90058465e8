package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Issue struct {
	Path string
	Rule string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s failed %q", i.Path, i.Rule)
}

// Validate reports malformed records. The renderer tolerates every issue returned here,
// so callers log them instead of aborting.
func Validate(c *entity.Catalog) ([]Issue, error) {
	err := validate.Struct(c)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Path: fe.Namespace(), Rule: fe.Tag()})
	}
	return issues, nil
}
