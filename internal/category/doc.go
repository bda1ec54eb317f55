// Package category assigns schema return types to folder categories.
//
// The classifier clusters names by their capitalized words. It is built once
// from the complete name set and only read afterwards:
//
//  1. Every name is split into words and stop words are dropped.
//  2. Word frequencies are counted over the whole set.
//  3. Pass 1 gives each name a provisional category: an anchored word, else
//     the rarest word that is common enough to form a cluster, else the most
//     common word of the name.
//  4. Provisional categories with at least MinClusterSize members are kept.
//  5. Pass 2 moves every other name into a kept category through an anchor
//     or the majority vote of its words, or into Misc.
//
// Any change to the name set may move any name.
package category
