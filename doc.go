/*

Package switchback holds the small set of values every other switchback
package shares: context keys, sentinel errors, and the Environment a
switchback app operates in.

*/
package switchback
