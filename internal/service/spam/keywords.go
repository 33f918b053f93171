package spam

// builtinKeywords are matched case-insensitively as substrings of the body.
// Keep entries specific: a hit rejects the feedback outright.
var builtinKeywords = []string{
	"boostleadgeneration.com",
	"jumboleadmagnet.com",
	"earn money online",
	"make money online",
	"make money fast",
	"work from home opportunity",
	"passive income",
	"crypto investment",
	"bitcoin investment",
	"forex trading",
	"online casino",
	"casino bonus",
	"viagra",
	"cialis",
	"payday loan",
	"seo services",
	"backlinks",
	"buy followers",
	"lead generation",
	"guaranteed ranking",
	"limited time offer",
	"click here to claim",
	"weight loss pills",
}
