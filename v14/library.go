package v14

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
)

// Library is one of the document's top level libraries. Only geometry
// libraries are decoded; the remaining kinds are markers recording
// which library appeared.
type Library interface {
	library()
}

// LibraryAnimationClips marks a library_animation_clips element.
type LibraryAnimationClips struct{}

// LibraryAnimations marks a library_animations element.
type LibraryAnimations struct{}

// LibraryCameras marks a library_cameras element.
type LibraryCameras struct{}

// LibraryControllers marks a library_controllers element.
type LibraryControllers struct{}

// LibraryEffects marks a library_effects element.
type LibraryEffects struct{}

// LibraryForceFields marks a library_force_fields element.
type LibraryForceFields struct{}

// LibraryImages marks a library_images element.
type LibraryImages struct{}

// LibraryLights marks a library_lights element.
type LibraryLights struct{}

// LibraryMaterials marks a library_materials element.
type LibraryMaterials struct{}

// LibraryNodes marks a library_nodes element.
type LibraryNodes struct{}

// LibraryPhysicsMaterials marks a library_physics_materials element.
type LibraryPhysicsMaterials struct{}

// LibraryPhysicsModels marks a library_physics_models element.
type LibraryPhysicsModels struct{}

// LibraryPhysicsScenes marks a library_physics_scenes element.
type LibraryPhysicsScenes struct{}

// LibraryVisualScenes marks a library_visual_scenes element.
type LibraryVisualScenes struct{}

// LibraryGeometries holds the document's geometric data.
type LibraryGeometries struct {
	ID         *string
	Name       *string
	Asset      *Asset
	Geometries []*Geometry
	Extras     []*Extra
}

func (*LibraryAnimationClips) library()   {}
func (*LibraryAnimations) library()       {}
func (*LibraryCameras) library()          {}
func (*LibraryControllers) library()      {}
func (*LibraryEffects) library()          {}
func (*LibraryForceFields) library()      {}
func (*LibraryGeometries) library()       {}
func (*LibraryImages) library()           {}
func (*LibraryLights) library()           {}
func (*LibraryMaterials) library()        {}
func (*LibraryNodes) library()            {}
func (*LibraryPhysicsMaterials) library() {}
func (*LibraryPhysicsModels) library()    {}
func (*LibraryPhysicsScenes) library()    {}
func (*LibraryVisualScenes) library()     {}

var libraryStubs = map[string]func() Library{
	"library_animation_clips":   func() Library { return &LibraryAnimationClips{} },
	"library_animations":        func() Library { return &LibraryAnimations{} },
	"library_cameras":           func() Library { return &LibraryCameras{} },
	"library_controllers":       func() Library { return &LibraryControllers{} },
	"library_effects":           func() Library { return &LibraryEffects{} },
	"library_force_fields":      func() Library { return &LibraryForceFields{} },
	"library_images":            func() Library { return &LibraryImages{} },
	"library_lights":            func() Library { return &LibraryLights{} },
	"library_materials":         func() Library { return &LibraryMaterials{} },
	"library_nodes":             func() Library { return &LibraryNodes{} },
	"library_physics_materials": func() Library { return &LibraryPhysicsMaterials{} },
	"library_physics_models":    func() Library { return &LibraryPhysicsModels{} },
	"library_physics_scenes":    func() Library { return &LibraryPhysicsScenes{} },
	"library_visual_scenes":     func() Library { return &LibraryVisualScenes{} },
}

func isLibraryElement(name string) bool {
	if name == "library_geometries" {
		return true
	}
	_, ok := libraryStubs[name]
	return ok
}

var libraryElementNames = schema.AddName(
	"library_animation_clips",
	"library_animations",
	"library_cameras",
	"library_controllers",
	"library_effects",
	"library_force_fields",
	"library_geometries",
	"library_images",
	"library_lights",
	"library_materials",
	"library_nodes",
	"library_physics_materials",
	"library_physics_models",
	"library_physics_scenes",
	"library_visual_scenes",
)

func parseLibrary(sc *schema.Scanner, start xml.StartElement) (Library, error) {
	name := start.Name.Local
	if name == "library_geometries" {
		return parseLibraryGeometries(sc, start)
	}
	if err := schema.Skip(sc, name); err != nil {
		return nil, err
	}
	return libraryStubs[name](), nil
}

func parseLibraryGeometries(sc *schema.Scanner, start xml.StartElement) (*LibraryGeometries, error) {
	lib := &LibraryGeometries{}
	err := schema.Attrs(sc, "library_geometries", start,
		schema.Attr{Name: "id", Set: schema.SetOptional(&lib.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&lib.Name)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "library_geometries", Children: []schema.Child{
		schema.Rule("asset", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			a, err := parseAsset(sc, start)
			if err != nil {
				return err
			}
			lib.Asset = a
			return nil
		}),
		schema.Rule("geometry", schema.RequiredMany, func(sc *schema.Scanner, start xml.StartElement) error {
			g, err := parseGeometry(sc, start)
			if err != nil {
				return err
			}
			lib.Geometries = append(lib.Geometries, g)
			return nil
		}),
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			lib.Extras = append(lib.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return lib, nil
}
