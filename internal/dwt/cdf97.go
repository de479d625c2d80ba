package dwt

// CDF 9/7 lifting coefficients, identical to the constants used by
// go-jpeg2000/internal/dwt's Forward97/Inverse97 (ITU-T T.800 Annex F).
const (
	alpha97 = -1.586134342
	beta97  = -0.052980118
	gamma97 = 0.882911075
	delta97 = 0.443506852
	k97     = 1.230174105
	k97Inv  = 1 / k97
)

// forwardCDF97 applies the four-step lifting transform with symmetric
// whole-sample boundary extension: mirroring around each endpoint without
// repeating it, which is why the boundary terms below double the
// contribution of the single mirrored neighbor (data[length-2] or
// data[1]) instead of indexing past the array.
func forwardCDF97(data []float64, offset, stride, length int) {
	at := func(i int) float64 { return data[offset+i*stride] }
	set := func(i int, v float64) { data[offset+i*stride] = v }

	// Step 1: predict (alpha)
	for i := 1; i < length-1; i += 2 {
		set(i, at(i)+alpha97*(at(i-1)+at(i+1)))
	}
	set(length-1, at(length-1)+2*alpha97*at(length-2))

	// Step 2: update (beta)
	set(0, at(0)+2*beta97*at(1))
	for i := 2; i < length-1; i += 2 {
		set(i, at(i)+beta97*(at(i-1)+at(i+1)))
	}

	// Step 3: predict (gamma)
	for i := 1; i < length-1; i += 2 {
		set(i, at(i)+gamma97*(at(i-1)+at(i+1)))
	}
	set(length-1, at(length-1)+2*gamma97*at(length-2))

	// Step 4: update (delta)
	set(0, at(0)+2*delta97*at(1))
	for i := 2; i < length-1; i += 2 {
		set(i, at(i)+delta97*(at(i-1)+at(i+1)))
	}

	// Step 5: scale
	for i := 0; i < length; i += 2 {
		set(i, at(i)*k97Inv)
	}
	for i := 1; i < length; i += 2 {
		set(i, at(i)*k97)
	}

	deinterleave(data, offset, stride, length)
}

// inverseCDF97 exactly reverses forwardCDF97.
func inverseCDF97(data []float64, offset, stride, length int) {
	interleave(data, offset, stride, length)

	at := func(i int) float64 { return data[offset+i*stride] }
	set := func(i int, v float64) { data[offset+i*stride] = v }

	// Undo step 5: scale
	for i := 0; i < length; i += 2 {
		set(i, at(i)*k97)
	}
	for i := 1; i < length; i += 2 {
		set(i, at(i)*k97Inv)
	}

	// Undo step 4: update (delta)
	set(0, at(0)-2*delta97*at(1))
	for i := 2; i < length-1; i += 2 {
		set(i, at(i)-delta97*(at(i-1)+at(i+1)))
	}

	// Undo step 3: predict (gamma)
	set(length-1, at(length-1)-2*gamma97*at(length-2))
	for i := 1; i < length-1; i += 2 {
		set(i, at(i)-gamma97*(at(i-1)+at(i+1)))
	}

	// Undo step 2: update (beta)
	set(0, at(0)-2*beta97*at(1))
	for i := 2; i < length-1; i += 2 {
		set(i, at(i)-beta97*(at(i-1)+at(i+1)))
	}

	// Undo step 1: predict (alpha)
	set(length-1, at(length-1)-2*alpha97*at(length-2))
	for i := 1; i < length-1; i += 2 {
		set(i, at(i)-alpha97*(at(i-1)+at(i+1)))
	}
}
