package metadata

import "github.com/dannisliang/hydrogen/engine/math"

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief A material, which represents various properties of a surface in the
 * world such as colour and shininess. The combining engine only groups by the
 * material id; the rest of the fields travel through untouched for the host.
 */
type Material struct {
	/** @brief The material id: a hash of the material identity/content. */
	ID uint32
	/** @brief The material name. */
	Name string
	/** @brief The diffuse colour. */
	DiffuseColour math.Vec4
	/** @brief The material shininess, determines how concentrated the specular lighting is. */
	Shininess float32
}
