package content

import "github.com/tebramedicals/medtech-site/internal/domain"

// Reveal is the fade-and-rise entrance used by page sections.
var Reveal = domain.MotionVariant{
	HiddenOpacity:  0,
	HiddenOffsetY:  20,
	DurationSec:    0.6,
	StaggerSec:     0.1,
	Ease:           "easeOut",
	OnceInViewport: true,
}

// Scene returns the decorative background for a route. Routes without one get nil.
func Scene(path string) *domain.Scene {
	switch path {
	case PathHome:
		return &domain.Scene{
			Opacity:         0.6,
			AmbientLight:    0.4,
			AutoRotateSpeed: 0.5,
			Shapes: []domain.SceneShape{
				{Kind: "box", Args: []float64{2, 1.2, 0.6}, Color: "#3B82F6", Emissive: "#1E40AF", EmissiveIntensity: 0.2, Metalness: 0.8, Roughness: 0.2, FloatSpeed: 1, RotationIntensity: 0.3, FloatIntensity: 0.2},
				{Kind: "sphere", Args: []float64{0.5}, Position: [3]float64{1.5, 0.8, 0}, Color: "#8B5CF6", Emissive: "#8B5CF6", EmissiveIntensity: 0.2, Metalness: 0.8, Roughness: 0.2, FloatSpeed: 0.5, RotationIntensity: 0.5, FloatIntensity: 1},
				{Kind: "torus", Args: []float64{0.4, 0.1, 16, 32}, Position: [3]float64{-1.5, -0.8, 0}, Color: "#EF4444", Emissive: "#DC2626", EmissiveIntensity: 0.1, Metalness: 0.9, Roughness: 0.1, FloatSpeed: 1.5, RotationIntensity: 1, FloatIntensity: 1},
			},
		}
	case PathAbout:
		return &domain.Scene{
			Opacity:         0.2,
			AmbientLight:    0.3,
			AutoRotateSpeed: 0.3,
			Shapes: []domain.SceneShape{
				{Kind: "sphere", Args: []float64{1}, Position: [3]float64{-3, 1, -2}, Color: "#3B82F6", Metalness: 0.8, Roughness: 0.2, FloatSpeed: 1.2, RotationIntensity: 1, FloatIntensity: 2},
				{Kind: "box", Args: []float64{1, 1, 1}, Position: [3]float64{3, -1, -1}, Color: "#10B981", Metalness: 0.6, Roughness: 0.3, FloatSpeed: 0.8, RotationIntensity: 1.5, FloatIntensity: 1},
			},
		}
	case PathContact:
		return &domain.Scene{
			Opacity:         0.2,
			AmbientLight:    0.3,
			AutoRotateSpeed: 0.3,
			Shapes: []domain.SceneShape{
				{Kind: "torus", Args: []float64{1, 0.3, 16, 32}, Position: [3]float64{-3, 2, -2}, Color: "#3B82F6", Metalness: 0.8, Roughness: 0.2, FloatSpeed: 1, RotationIntensity: 1, FloatIntensity: 2},
				{Kind: "sphere", Args: []float64{0.8}, Position: [3]float64{3, -1, -1}, Color: "#10B981", Metalness: 0.6, Roughness: 0.3, FloatSpeed: 1.5, RotationIntensity: 0.5, FloatIntensity: 1.5},
				{Kind: "torus", Args: []float64{0.5, 0.2, 8, 16}, Position: [3]float64{0, 3, -3}, Color: "#F59E0B", Emissive: "#F59E0B", EmissiveIntensity: 0.3, FloatSpeed: 0.8, RotationIntensity: 2, FloatIntensity: 1},
			},
		}
	}
	return nil
}
