// Package preprocess defines the fixed catalog of image-preparation
// recipes applied before symbol decoding.
package preprocess

// Op names a single filter operation within a recipe.
type Op string

const (
	// OpDenoise applies a gaussian blur; Amount is the blur sigma.
	OpDenoise Op = "denoise"
	// OpContrast stretches contrast; Amount is the percentage change.
	OpContrast Op = "contrast"
	// OpSharpen sharpens edges; Amount is the sharpening sigma.
	OpSharpen Op = "sharpen"
	// OpThreshold binarizes to pure black/white; Amount is the cutoff
	// luminance in [0,255].
	OpThreshold Op = "threshold"
)

// Step is one filter operation with its numeric parameter.
type Step struct {
	Op     Op      `yaml:"op" json:"op"`
	Amount float64 `yaml:"amount" json:"amount"`
}

// Recipe is an ordered set of filter steps. Recipes come from the
// fixed catalog below and are never constructed by callers.
type Recipe struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Standard prepares a moderately degraded capture: light denoise,
// moderate contrast stretch, then a sharpen pass to recover module
// edges softened by the blur.
func Standard() Recipe {
	return Recipe{
		Name: "standard",
		Steps: []Step{
			{Op: OpDenoise, Amount: 0.8},
			{Op: OpContrast, Amount: 15},
			{Op: OpSharpen, Amount: 0.7},
		},
	}
}

// Enhanced trades fine detail for noise robustness: heavier denoise
// and contrast, a stronger sharpen, and a hard binarization.
func Enhanced() Recipe {
	return Recipe{
		Name: "enhanced",
		Steps: []Step{
			{Op: OpDenoise, Amount: 1.6},
			{Op: OpContrast, Amount: 35},
			{Op: OpSharpen, Amount: 1.3},
			{Op: OpThreshold, Amount: 128},
		},
	}
}

// Catalog returns all recipes in definition order.
func Catalog() []Recipe {
	return []Recipe{Standard(), Enhanced()}
}
