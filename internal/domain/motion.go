package domain

// MotionVariant describes a start and end pose for an element that animates
// into view. Values are handed to the browser untouched.
type MotionVariant struct {
	HiddenOpacity  float64 `json:"hiddenOpacity"`
	HiddenOffsetY  float64 `json:"hiddenOffsetY"`
	DurationSec    float64 `json:"duration"`
	StaggerSec     float64 `json:"stagger,omitempty"`
	Ease           string  `json:"ease,omitempty"`
	OnceInViewport bool    `json:"once"`
}

// SceneShape is one decorative primitive of a page background.
type SceneShape struct {
	Kind              string     `json:"kind"` // "torus", "sphere", "box"
	Args              []float64  `json:"args"`
	Position          [3]float64 `json:"position"`
	Color             string     `json:"color"`
	Emissive          string     `json:"emissive,omitempty"`
	EmissiveIntensity float64    `json:"emissiveIntensity,omitempty"`
	Metalness         float64    `json:"metalness"`
	Roughness         float64    `json:"roughness"`
	FloatSpeed        float64    `json:"floatSpeed"`
	RotationIntensity float64    `json:"rotationIntensity"`
	FloatIntensity    float64    `json:"floatIntensity"`
}

// Scene is the decorative 3D background for a page.
type Scene struct {
	Opacity         float64      `json:"opacity"`
	AmbientLight    float64      `json:"ambientLight"`
	AutoRotateSpeed float64      `json:"autoRotateSpeed"`
	Shapes          []SceneShape `json:"shapes"`
}
