// Package synset provides an offline query engine over a WordNet-style
// lexical graph: lexical entries, word senses, synsets, and the typed
// relations between them. It builds bidirectional indices over the graph,
// answers word and identifier lookups (definitions, synonyms, hypernyms,
// hyponyms), and exports the reachable portion of the graph into a
// normalized relational schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, etree/, http/).
package synset
