// Package ingest converts node/edge record documents to and from core.Graph.
//
// A Document is decoded from YAML or JSON (JSON is read as YAML):
//
//	directed: true
//	nodes:
//	  - id: api
//	    data: {team: platform}
//	edges:
//	  - {source: api, target: db, weight: 3}
//
// Edge endpoints missing from nodes are created. When weighted is omitted it
// is inferred: any edge carrying a weight other than 1 makes the graph
// weighted. FromGraph goes the other way and can include stored results.
package ingest
