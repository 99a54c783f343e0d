package v14_test

import (
	"fmt"

	"github.com/andaru/collada/v14"
)

// This example walks a mesh's polygons and resolves each vertex to its
// position data. The polylist's index values address the mesh's
// vertices element, whose POSITION input names the source holding the
// raw float array; the source's accessor turns a vertex index into a
// window on that array.
func Example_resolvePositions() {
	const document = `<COLLADA version="1.4.1">
  <asset>
    <created>2017-02-07T20:44:30Z</created>
    <modified>2017-02-07T20:44:30Z</modified>
  </asset>
  <library_geometries>
    <geometry id="tri">
      <mesh>
        <source id="positions">
          <float_array id="positions-array" count="9">1 0 0 0 1 0 0 0 1</float_array>
          <technique_common>
            <accessor count="3" source="#positions-array" stride="3">
              <param name="X" type="float"/>
              <param name="Y" type="float"/>
              <param name="Z" type="float"/>
            </accessor>
          </technique_common>
        </source>
        <vertices id="verts">
          <input semantic="POSITION" source="#positions"/>
        </vertices>
        <polylist count="1">
          <input offset="0" semantic="VERTEX" source="#verts"/>
          <vcount>3</vcount>
          <p>0 1 2</p>
        </polylist>
      </mesh>
    </geometry>
  </library_geometries>
</COLLADA>`

	doc, err := v14.ParseString(document)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	mesh := doc.LibraryGeometries()[0].Geometries[0].Mesh()
	source := mesh.SourceByID(mesh.Vertices.InputForSemantic("POSITION").Source.ID())
	accessor := source.CommonAccessor()
	data := source.FloatArray().Data

	polylist := mesh.Primitives[0].(*v14.Polylist)
	for it := polylist.Iter(); it.Next(); {
		polygon := it.Polygon()
		for i := 0; i < polygon.Len(); i++ {
			fmt.Println(accessor.Access(data, polygon.Vertex(i)[0]))
		}
	}
	// Output:
	// [1 0 0]
	// [0 1 0]
	// [0 0 1]
}
