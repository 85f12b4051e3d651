package insts

import "fmt"

// UndefinedError reports a bit pattern that falls in an architecturally
// unallocated hole. The driver maps it to INVALID when its
// ContinueOnError option is set.
type UndefinedError struct {
	Word   uint32
	Reason string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined instruction 0x%08X: %s", e.Word, e.Reason)
}

// UnimplementedKind names a well-defined AArch64 encoding family this
// decoder does not cover, so a caller inspecting an UnimplementedError can
// tell which collaborator would have been needed.
type UnimplementedKind string

// Unimplemented kinds produced by the top-level dispatcher and the
// loads/stores subtree.
const (
	UnimplementedSME                       UnimplementedKind = "sme"
	UnimplementedSVE                       UnimplementedKind = "sve"
	UnimplementedDataProcessingImmediate    UnimplementedKind = "data-processing-immediate"
	UnimplementedDataProcessingRegister     UnimplementedKind = "data-processing-register"
	UnimplementedBranchExceptionSystem      UnimplementedKind = "branch-exception-system"
	UnimplementedSIMD                      UnimplementedKind = "simd"
	UnimplementedSIMDStructureSingle        UnimplementedKind = "simd-load-store-single-structure"
	UnimplementedSIMDStructureSinglePostIdx UnimplementedKind = "simd-load-store-single-structure-post-indexed"
	UnimplementedMemoryTags                 UnimplementedKind = "load-store-memory-tags"
	UnimplementedExclusivePair              UnimplementedKind = "load-store-exclusive-pair"
	UnimplementedExclusiveOrdered           UnimplementedKind = "load-store-exclusive-register-ordered-compare-swap"
	UnimplementedUnscaledLiteralMemcpy      UnimplementedKind = "ldapr-stlr-unscaled-literal-memcpy-memset"
	UnimplementedNoAllocatePair             UnimplementedKind = "load-store-no-allocate-pair"
	UnimplementedAtomic                     UnimplementedKind = "atomic-memory-operation"
	UnimplementedPointerAuth                UnimplementedKind = "load-store-pointer-auth"
	UnimplementedUnprivileged               UnimplementedKind = "load-store-unprivileged"
	UnimplementedPRFM                       UnimplementedKind = "prfm"
	UnimplementedPRFUM                      UnimplementedKind = "prfum"
)

// UnimplementedError reports an encoding family this decoder recognizes but
// does not resolve further. Represented inertly (Mnemonic UNIMPLEMENTED)
// or surfaced, depending on the driver's ThrowOnUnimplemented option.
type UnimplementedError struct {
	Word uint32
	Kind UnimplementedKind
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented instruction 0x%08X: %s", e.Word, e.Kind)
}
