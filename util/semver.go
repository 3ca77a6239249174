package util

import (
	"fmt"
	"strconv"
	"strings"
)

type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Beta       bool
	Alpha      bool
	Prerelease int
}

func ParseSemver(semver string) (Semver, error) {
	s := Semver{}
	semver = strings.TrimPrefix(strings.TrimSpace(semver), "v")

	version, pre, hasPre := strings.Cut(semver, "-")
	split := strings.Split(version, ".")
	if len(split) != 3 {
		return Semver{}, fmt.Errorf("invalid version: %q", semver)
	}
	nums := make([]int, 3)
	for i, part := range split {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Semver{}, fmt.Errorf("invalid version: %q", semver)
		}
		nums[i] = n
	}
	s.Major, s.Minor, s.Patch = nums[0], nums[1], nums[2]

	if hasPre {
		kind, num, _ := strings.Cut(pre, ".")
		switch kind {
		case "beta":
			s.Beta = true
		case "alpha":
			s.Alpha = true
		default:
			return Semver{}, fmt.Errorf("invalid prerelease type: %s", pre)
		}
		if num != "" {
			n, err := strconv.Atoi(num)
			if err != nil {
				return Semver{}, fmt.Errorf("invalid prerelease: %s", pre)
			}
			s.Prerelease = n
		}
	}

	return s, nil
}

func (s Semver) String() string {
	str := strconv.Itoa(s.Major) + "." + strconv.Itoa(s.Minor) + "." + strconv.Itoa(s.Patch)
	if s.Beta {
		str += "-beta." + strconv.Itoa(s.Prerelease)
	} else if s.Alpha {
		str += "-alpha." + strconv.Itoa(s.Prerelease)
	}
	return str
}

// rank orders alpha before beta before a release of the same version.
func (s Semver) rank() int {
	switch {
	case s.Alpha:
		return 0
	case s.Beta:
		return 1
	}
	return 2
}

// Compare returns -1, 0 or 1.
func (s Semver) Compare(o Semver) int {
	for _, d := range [...][2]int{
		{s.Major, o.Major},
		{s.Minor, o.Minor},
		{s.Patch, o.Patch},
		{s.rank(), o.rank()},
		{s.Prerelease, o.Prerelease},
	} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

// Satisfies checks s against a constraint: an exact version, or one
// prefixed with ~ (same minor), ^ (same major), >, >=, < or <=.
func (s Semver) Satisfies(cmp string) (bool, error) {
	cmp = strings.TrimSpace(cmp)
	op := ""
	for _, prefix := range []string{">=", "<=", "~", "^", ">", "<", "="} {
		if strings.HasPrefix(cmp, prefix) {
			op = prefix
			cmp = cmp[len(prefix):]
			break
		}
	}

	c, err := ParseSemver(cmp)
	if err != nil {
		return false, err
	}

	order := s.Compare(c)
	switch op {
	case "~":
		return s.Major == c.Major && s.Minor == c.Minor && order >= 0, nil
	case "^":
		return s.Major == c.Major && order >= 0, nil
	case ">":
		return order > 0, nil
	case ">=":
		return order >= 0, nil
	case "<":
		return order < 0, nil
	case "<=":
		return order <= 0, nil
	}
	return order == 0, nil
}
