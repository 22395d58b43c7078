// Package address wires the generic record validation pipeline to a
// concrete record type: a postal address tagged "address" with mandatory
// country, state and city fields and optional zip code and street fields.
//
// The package ships a default country to states reference table (Regions)
// and a ready pipeline ordering structural checks before content checks.
// Callers with their own reference data build a pipeline via NewPipeline
// with a table loaded through the refdata package.
package address
