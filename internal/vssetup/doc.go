// Package vssetup wraps the Visual Studio Setup Configuration object
// model: the configuration entry point, instance enumeration, instances
// and their packages, property stores, catalogs, and error state.
//
// Every wrapper owns exactly one com handle and must be closed by its
// owner unless documented as borrowed. Like the com package underneath,
// nothing here is safe for concurrent use.
package vssetup
