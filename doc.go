/*
Package langdet builds the statistical model behind an n-gram text language
detector in the langdetect lineage: many per-language n-gram frequency
profiles are merged into one shared matrix that maps each n-gram to a dense
vector of conditional probabilities, one slot per candidate language.

This package covers model construction only. Generating profiles from raw
text and running the detection pass over the finished model are separate
concerns; the detector is produced here solely as a configured handle over
the model.


Usage

Load the profile documents for your candidate languages:

	profiles, err := langdet.LoadProfiles(os.DirFS("profiles"), []string{"en.json", "fr.json", "de.json"})

Merge them. The builder is sized up front so every probability vector gets
its final length on first allocation:

	b := langdet.NewBuilder(len(profiles))
	for _, p := range profiles {
		err := b.Add(p)
	}
	model := b.Model()

Or do both in one step:

	model, err := langdet.Build(os.DirFS("profiles"), []string{"en.json", "fr.json", "de.json"})

Hand the model to a detector, optionally tuning the smoothing parameter:

	det, err := langdet.NewDetector(model)
	det, err := langdet.NewDetector(model, langdet.WithAlpha(0.7))

The model is frozen once built; any number of detectors may share it
concurrently.
*/
package langdet
