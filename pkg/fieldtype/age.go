package fieldtype

import (
	"strconv"

	"github.com/goliatone/go-maskfield/pkg/validation"
)

const (
	msgAgeTooLarge = "Age cannot exceed %d"
	msgAgeTooSmall = "Age must be at least %d"
	msgAgeLogic    = "LOGIC ERROR VALIDATE LIVE"
)

func overlaps(lo, hi, min, max int) bool {
	return lo <= max && hi >= min
}

// liveAge checks whether a partial age can still complete to a value inside
// [min, max].
func (t Type) liveAge(text string) validation.Result {
	if text == "" {
		return validation.OK()
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return validation.Fail("INVALID AGE FORMAT")
	}
	if len(text) > t.MaxDataLength() {
		return validation.Failf(msgAgeTooLarge, t.max)
	}

	min, max := t.min, t.max
	switch len(text) {
	case 1:
		if value == 0 {
			if max >= 100 {
				return validation.OK()
			}
			return validation.Failf(msgAgeTooSmall, min)
		}
		twoStart, twoEnd := value*10, value*10+9
		threeStart, threeEnd := value*100, value*100+99
		if overlaps(twoStart, twoEnd, min, max) || overlaps(threeStart, threeEnd, min, max) {
			return validation.OK()
		}
		switch {
		case max < twoStart:
			return validation.Failf(msgAgeTooLarge, max)
		case min > threeEnd:
			return validation.Failf(msgAgeTooSmall, min)
		case max < threeStart:
			return validation.Failf(msgAgeTooLarge, max)
		}
		return validation.Fail(msgAgeLogic)
	case 2:
		if value < 10 || value > 99 {
			return validation.Fail(msgAgeLogic)
		}
		threeStart, threeEnd := value*10, value*10+9
		if (value >= min && value <= max) || overlaps(threeStart, threeEnd, min, max) {
			return validation.OK()
		}
		switch {
		case value < min:
			return validation.Failf(msgAgeTooSmall, min)
		case value > max:
			return validation.Failf(msgAgeTooLarge, max)
		case min > threeEnd:
			return validation.Failf(msgAgeTooSmall, min)
		case max < threeStart:
			return validation.Failf(msgAgeTooLarge, max)
		}
		return validation.Fail(msgAgeLogic)
	default:
		if value < min {
			return validation.Failf(msgAgeTooSmall, min)
		}
		if value > max {
			return validation.Failf(msgAgeTooLarge, max)
		}
		return validation.OK()
	}
}

func (t Type) resultAge(text string) validation.Result {
	value, err := strconv.Atoi(text)
	if err != nil {
		return validation.Fail(msgAgeLogic)
	}
	if value < t.min {
		return validation.Failf("Value is smaller than %d", t.min)
	}
	if value > t.max {
		return validation.Failf("Value is larger than %d", t.max)
	}
	return validation.OK()
}
