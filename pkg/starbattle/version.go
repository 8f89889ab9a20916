// Package starbattle provides the star-battle deduction engine.
//
// Version: 0.1.0
package starbattle

// Version is the current version of the deduction engine.
const Version = "0.1.0"
