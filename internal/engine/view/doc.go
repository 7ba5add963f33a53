// Package view defines the view-layout collaborator contracts: the
// rendered coordinate space (View) and the bidirectional convertor
// between document and view coordinates (Converter).
//
// The cursor engine keeps every cursor's state in both spaces and
// re-derives one from the other through a Converter, so a folding or
// wrapping layer can be swapped in without touching cursor logic.
// IdentityView covers the common no-wrap, no-fold case.
package view
