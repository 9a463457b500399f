package commands

import (
	"fmt"
	"strconv"

	"minicrypt/internal/domain"
)

func parseInteger(name, s string) (domain.Integer, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}

func yesNo(ok bool) string {
	if ok {
		return "Yes"
	}
	return "No"
}
