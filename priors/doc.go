// Package priors derives uniform prior ranges for the free parameters of a
// background model from a rough estimate of νmax and the star's PSD.
//
// The derivation combines three sources:
//
//   - empirical scaling relations in νmax for the large frequency separation
//     and for the characteristic frequencies and amplitudes of the
//     granulation profiles ([ScalingRelations])
//   - levels read off the PSD itself: the white-noise floor, the height of
//     the smoothed oscillation excess, and the peak power near each Harvey
//     frequency, converted to an amplitude by inverting the Harvey
//     normalisation
//   - band de-overlap between adjacent Harvey frequency ranges
//     ([ResolveOverlap])
//
// [Synthesize] runs the whole pipeline; [Assemble] selects and orders the
// ranges for a model variant.
//
// # Example
//
//	s, _ := psd.ReadFile("data/KIC012008916.txt")
//	res, err := priors.Synthesize(s, 162, background.ThreeHarvey)
//	if err != nil {
//		return err
//	}
//	for _, b := range res.Boundaries {
//		fmt.Printf("%-10s %8.3f %8.3f\n", b.Slot.Label(), b.Lower, b.Upper)
//	}
package priors
