package plotkit

import (
	"fmt"
	"strings"

	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

// Param is one name=value entry of a title parameter list. A slice of Param
// keeps the caller's ordering, unlike a map.
type Param struct {
	Name  string
	Value string
}

// FormatTitle builds a math-text chart title from a dependent variable name,
// one or two independent variable names and an optional parameter list:
//
//	FormatTitle("y", []string{"x"}, nil)        => "$y$ vs $x$"
//	FormatTitle("y", []string{"x", "t"}, nil)   => "$y$ vs ($x,~t$)"
//
// Params append a " when $k=v,~k2=v2$" suffix in order.
func FormatTitle(dep string, indeps []string, params []Param) (string, error) {
	var title string
	switch len(indeps) {
	case 1:
		title = fmt.Sprintf("$%s$ vs $%s$", dep, indeps[0])
	case 2:
		title = fmt.Sprintf("$%s$ vs ($%s,~%s$)", dep, indeps[0], indeps[1])
	default:
		return "", fmt.Errorf("want 1 or 2 independent variables, got %d: %w",
			len(indeps), plotstyle.ErrInvalidArgument)
	}
	if len(params) > 0 {
		pairs := make([]string, len(params))
		for i, kv := range params {
			pairs[i] = kv.Name + "=" + kv.Value
		}
		title += fmt.Sprintf(" when $%s$", strings.Join(pairs, ",~"))
	}
	return title, nil
}

// Annotate applies the standard decoration in one call: title via FormatTitle,
// x-label from the independents joined with ",~", y-label from the dependent,
// all math-text wrapped, plus the legend flag.
func (p *Plot) Annotate(dep string, indeps []string, params []Param, legend bool) error {
	title, err := FormatTitle(dep, indeps, params)
	if err != nil {
		return err
	}
	p.SetTitle(title)
	p.SetXLabel("$" + strings.Join(indeps, ",~") + "$")
	p.SetYLabel("$" + dep + "$")
	p.legend = legend
	return nil
}
