package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithHeightZeroIsIdempotent(t *testing.T) {
	v := mustParse(t, "1.2.3-beta.1")
	require.Equal(t, v, v.WithHeight(0, Patch, []string{"alpha", "0"}))

	release := mustParse(t, "1.2.3")
	require.Equal(t, release, release.WithHeight(0, Major, nil))
}

func TestWithHeightOnPreReleaseAppendsHeight(t *testing.T) {
	v := mustParse(t, "1.2.3-beta.1")
	got := v.WithHeight(2, Patch, []string{"alpha", "0"})
	require.Equal(t, "1.2.3-beta.1.2", got.String())
}

func TestWithHeightOnReleaseBumpsAndAttachesDefaults(t *testing.T) {
	v := mustParse(t, "1.2.3")

	patch := v.WithHeight(2, Patch, []string{"alpha", "0"})
	require.Equal(t, "1.2.4-alpha.0.2", patch.String())

	minor := v.WithHeight(1, Minor, []string{"alpha", "0"})
	require.Equal(t, "1.3.0-alpha.0.1", minor.String())

	major := v.WithHeight(1, Major, []string{"alpha", "0"})
	require.Equal(t, "2.0.0-alpha.0.1", major.String())
}

func TestWithHeightDefaultPartIsPatch(t *testing.T) {
	v := mustParse(t, "1.2.3")
	part, err := ParseVersionPart("")
	require.NoError(t, err)
	got := v.WithHeight(1, part, nil)
	require.Equal(t, "1.2.4-1", got.String())
}

func TestAddBuildMetadata(t *testing.T) {
	v := mustParse(t, "1.2.3")

	unchanged, err := v.AddBuildMetadata("")
	require.NoError(t, err)
	require.Equal(t, v, unchanged)

	withBuild, err := v.AddBuildMetadata("abc.def")
	require.NoError(t, err)
	require.Equal(t, "1.2.3+abc.def", withBuild.String())

	_, err = v.AddBuildMetadata("not valid!")
	require.Error(t, err)
}

func TestSatisfyingAboveMinimumIsUnchanged(t *testing.T) {
	v := mustParse(t, "2.5.0")
	min := MajorMinor{Major: 2, Minor: 0}
	require.Equal(t, v, v.Satisfying(min, nil))

	exact := mustParse(t, "2.0.7")
	require.Equal(t, exact, exact.Satisfying(min, nil))
}

func TestSatisfyingBelowMinimumRewrites(t *testing.T) {
	v := mustParse(t, "1.2.4-alpha.0.2")
	min := MajorMinor{Major: 2, Minor: 0}
	got := v.Satisfying(min, []string{"alpha", "0"})
	require.Equal(t, "2.0.0-alpha.0", got.String())
}

func TestSatisfyingDropsBuildMetadataWhenRewritten(t *testing.T) {
	v := mustParse(t, "1.2.4-alpha.0.2")
	withBuild, err := v.AddBuildMetadata("abc.def")
	require.NoError(t, err)

	min := MajorMinor{Major: 2, Minor: 0}
	got := withBuild.Satisfying(min, []string{"alpha", "0"})
	require.Empty(t, got.Build)
	require.Equal(t, "2.0.0-alpha.0", got.String())
}

func TestParseMajorMinor(t *testing.T) {
	mm, err := ParseMajorMinor("2.0")
	require.NoError(t, err)
	require.Equal(t, MajorMinor{Major: 2, Minor: 0}, mm)

	_, err = ParseMajorMinor("2")
	require.Error(t, err)

	_, err = ParseMajorMinor("2.0.0")
	require.Error(t, err)
}

func TestParsePreReleaseIdentifiers(t *testing.T) {
	ids, err := ParsePreReleaseIdentifiers("alpha,0")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "0"}, ids)

	ids, err = ParsePreReleaseIdentifiers("")
	require.NoError(t, err)
	require.Nil(t, ids)

	_, err = ParsePreReleaseIdentifiers("alpha,01")
	require.Error(t, err)
}

func TestParseVersionPart(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want VersionPart
	}{
		{"", Patch},
		{"patch", Patch},
		{"Minor", Minor},
		{"MAJOR", Major},
	} {
		got, err := ParseVersionPart(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := ParseVersionPart("bogus")
	require.Error(t, err)
}
