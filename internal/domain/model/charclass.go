package model

// Character classes a generated password draws from. Every generated
// password contains at least one character of each class.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = "!@#$%^&*()_+<>?~"
)

// CharacterClasses lists the classes in pool order.
var CharacterClasses = []string{LowercaseChars, UppercaseChars, DigitChars, SpecialChars}

// CharacterPool is the concatenation of all classes in pool order.
const CharacterPool = LowercaseChars + UppercaseChars + DigitChars + SpecialChars
