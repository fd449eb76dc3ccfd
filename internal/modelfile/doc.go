// Package modelfile loads declaration models from YAML files.
//
// A model file describes the declarations of one analysis session: library
// types (markers, collection types) and the application's persistent types
// with their constructors, properties and annotations. Several files may be
// combined into one universe, which is how a shared library file is reused
// across projects.
//
// # Schema Overview
//
//	version: "1"
//	package: com.example          # qualifies simple declaration names
//	types:
//	  - name: java.util.Collection
//	    params: 1
//	  - name: java.util.Set
//	    params: 1
//	    supertypes: ["java.util.Collection<E>"]
//	declarations:
//	  - name: Parent
//	    annotations: [javax.persistence.Entity]
//	    constructors:
//	      - params: [int]
//	    properties:
//	      - name: getChildren
//	        kind: accessor          # field (default) | accessor
//	        type: java.util.Set<Child>
//	        annotations:
//	          - type: javax.persistence.OneToMany
//	            attributes:
//	              mappedBy: parent          # string value
//	              targetEntity: {class: Child}
//
// Simple type names resolve against the file's package first, then against
// any uniquely named declaration. Primitive names resolve without a
// declaration.
package modelfile
