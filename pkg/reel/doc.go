// Package reel defines the dimension record of a cable reel and its
// validation rules.
//
// # Dimensions
//
// A [Dimensions] value holds the six millimeter measurements that fully
// describe a reel for drawing purposes: flange diameter, barrel (core)
// diameter, inner width, arbor hole diameter, flange thickness and drum
// (core wall) thickness. [Default] returns the record shown on an empty
// request.
//
// # Validation
//
// [Validate] checks every field against its declared range and checks that
// the barrel is smaller than the flange. Violations are collected, never
// short-circuited, so a caller can present all of them at once:
//
//	res := reel.Validate(d)
//	if !res.OK() {
//	    for _, v := range res.Violations {
//	        fmt.Printf("%s: %s\n", v.Field, v.Message)
//	    }
//	}
//
// Ranges are declared once, as validator struct tags on [Dimensions], and
// exposed to form builders through [Fields].
package reel
