package v15

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
)

// Library is one of the document's top level libraries. Every kind is
// a marker recording which library appeared; no library content is
// decoded for version 1.5 documents.
type Library interface {
	library()
}

// LibraryAnimationClips marks a library_animation_clips element.
type LibraryAnimationClips struct{}

// LibraryAnimations marks a library_animations element.
type LibraryAnimations struct{}

// LibraryArticulatedSystems marks a library_articulated_systems
// element.
type LibraryArticulatedSystems struct{}

// LibraryCameras marks a library_cameras element.
type LibraryCameras struct{}

// LibraryControllers marks a library_controllers element.
type LibraryControllers struct{}

// LibraryEffects marks a library_effects element.
type LibraryEffects struct{}

// LibraryForceFields marks a library_force_fields element.
type LibraryForceFields struct{}

// LibraryFormulas marks a library_formulas element.
type LibraryFormulas struct{}

// LibraryGeometries marks a library_geometries element.
type LibraryGeometries struct{}

// LibraryImages marks a library_images element.
type LibraryImages struct{}

// LibraryJoints marks a library_joints element.
type LibraryJoints struct{}

// LibraryKinematicsModels marks a library_kinematics_models element.
type LibraryKinematicsModels struct{}

// LibraryKinematicsScenes marks a library_kinematics_scenes element.
type LibraryKinematicsScenes struct{}

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

func (*LibraryAnimationClips) library()     {}
func (*LibraryAnimations) library()         {}
func (*LibraryArticulatedSystems) library() {}
func (*LibraryCameras) library()            {}
func (*LibraryControllers) library()        {}
func (*LibraryEffects) library()            {}
func (*LibraryForceFields) library()        {}
func (*LibraryFormulas) library()           {}
func (*LibraryGeometries) library()         {}
func (*LibraryImages) library()             {}
func (*LibraryJoints) library()             {}
func (*LibraryKinematicsModels) library()   {}
func (*LibraryKinematicsScenes) library()   {}
func (*LibraryLights) library()             {}
func (*LibraryMaterials) library()          {}
func (*LibraryNodes) library()              {}
func (*LibraryPhysicsMaterials) library()   {}
func (*LibraryPhysicsModels) library()      {}
func (*LibraryPhysicsScenes) library()      {}
func (*LibraryVisualScenes) library()       {}

var libraryStubs = map[string]func() Library{
	"library_animation_clips":     func() Library { return &LibraryAnimationClips{} },
	"library_animations":          func() Library { return &LibraryAnimations{} },
	"library_articulated_systems": func() Library { return &LibraryArticulatedSystems{} },
	"library_cameras":             func() Library { return &LibraryCameras{} },
	"library_controllers":         func() Library { return &LibraryControllers{} },
	"library_effects":             func() Library { return &LibraryEffects{} },
	"library_force_fields":        func() Library { return &LibraryForceFields{} },
	"library_formulas":            func() Library { return &LibraryFormulas{} },
	"library_geometries":          func() Library { return &LibraryGeometries{} },
	"library_images":              func() Library { return &LibraryImages{} },
	"library_joints":              func() Library { return &LibraryJoints{} },
	"library_kinematics_models":   func() Library { return &LibraryKinematicsModels{} },
	"library_kinematics_scenes":   func() Library { return &LibraryKinematicsScenes{} },
	"library_lights":              func() Library { return &LibraryLights{} },
	"library_materials":           func() Library { return &LibraryMaterials{} },
	"library_nodes":               func() Library { return &LibraryNodes{} },
	"library_physics_materials":   func() Library { return &LibraryPhysicsMaterials{} },
	"library_physics_models":      func() Library { return &LibraryPhysicsModels{} },
	"library_physics_scenes":      func() Library { return &LibraryPhysicsScenes{} },
	"library_visual_scenes":       func() Library { return &LibraryVisualScenes{} },
}

func isLibraryElement(name string) bool {
	_, ok := libraryStubs[name]
	return ok
}

var libraryElementNames = schema.AddName(
	"library_animation_clips",
	"library_animations",
	"library_articulated_systems",
	"library_cameras",
	"library_controllers",
	"library_effects",
	"library_force_fields",
	"library_formulas",
	"library_geometries",
	"library_images",
	"library_joints",
	"library_kinematics_models",
	"library_kinematics_scenes",
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
	if err := schema.Skip(sc, name); err != nil {
		return nil, err
	}
	return libraryStubs[name](), nil
}
