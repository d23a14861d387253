package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmsa-qul/artsfest/models"
)

func TestGroupResultsByEvent_GroupsAndSortsWinners(t *testing.T) {
	results := []models.Result{
		{ID: "R3", EventID: "E1", StudentID: strPtr("S3"), Position: nil, Points: 5, Published: true},
		{ID: "R2", EventID: "E1", StudentID: strPtr("S2"), Position: intPtr(3), Points: 7, Published: true},
		{ID: "R9", EventID: "E2", TeamID: strPtr("T2"), Position: intPtr(1), Points: 25, Published: true},
		{ID: "R1", EventID: "E1", StudentID: strPtr("S1"), Position: intPtr(1), Points: 17, Published: true},
		{ID: "R4", EventID: "E1", StudentID: strPtr("S2"), Position: intPtr(2), Points: 11, Published: true},
	}

	cards := GroupResultsByEvent(fixtureEvents(), results, fixtureStudents(), fixtureTeams())

	require.Len(t, cards, 2)
	assert.Equal(t, "E1", cards[0].Event.ID)
	assert.Equal(t, models.CategoryJunior, cards[0].Category)
	assert.Equal(t, []string{"R1", "R4", "R2", "R3"}, winnerIDs(cards[0].Winners))
	assert.Equal(t, "Althaf", cards[0].Winners[0].Name)
	assert.Equal(t, "T3", cards[0].Winners[0].TeamID)

	assert.Equal(t, "E2", cards[1].Event.ID)
	assert.Equal(t, models.CategorySubJunior, cards[1].Category)
	assert.Equal(t, "Aden", cards[1].Winners[0].Name)
}

func TestGroupResultsByEvent_WinnersCarryTeamColor(t *testing.T) {
	results := []models.Result{
		{ID: "R1", EventID: "E1", StudentID: strPtr("S2"), Position: intPtr(1), Published: true},
		{ID: "R2", EventID: "E2", TeamID: strPtr("T3"), Position: intPtr(1), Published: true},
		{ID: "R3", EventID: "E2", TeamID: strPtr("T9"), Position: intPtr(2), Published: true},
		{ID: "R4", EventID: "E3", StudentID: strPtr("ghost"), Position: intPtr(1), Published: true},
	}

	cards := GroupResultsByEvent(fixtureEvents(), results, fixtureStudents(), fixtureTeams())
	require.Len(t, cards, 3)

	student := cards[0].Winners[0]
	assert.Equal(t, "GR1", student.TeamSlug)
	require.NotNil(t, student.TeamColor)
	assert.Equal(t, models.ColorForSlug("GR1"), *student.TeamColor)

	group := cards[1].Winners
	assert.Equal(t, "GR3", group[0].TeamSlug)
	require.NotNil(t, group[0].TeamColor)
	assert.Equal(t, "#ef4444", group[0].TeamColor.Hex)
	assert.Empty(t, group[1].TeamSlug)
	assert.Nil(t, group[1].TeamColor)

	assert.Nil(t, cards[2].Winners[0].TeamColor)
}

func TestGroupResultsByEvent_UnknownReferences(t *testing.T) {
	results := []models.Result{
		{ID: "R1", EventID: "E1", StudentID: strPtr("ghost"), Position: intPtr(1), Published: true},
		{ID: "R2", EventID: "E2", TeamID: strPtr("T9"), Position: intPtr(1), Published: true},
		{ID: "R3", EventID: "nope", TeamID: strPtr("T1"), Position: intPtr(1), Published: true},
	}

	cards := GroupResultsByEvent(fixtureEvents(), results, fixtureStudents(), fixtureTeams())

	require.Len(t, cards, 2)
	assert.Equal(t, "Unknown", cards[0].Winners[0].Name)
	assert.Equal(t, "Team", cards[1].Winners[0].Name)
	assert.Equal(t, "T9", cards[1].Winners[0].TeamID)
}

func TestSortWinners_NilLastAndStable(t *testing.T) {
	winners := []models.Winner{
		{ResultID: "a", Position: nil},
		{ResultID: "b", Position: intPtr(3)},
		{ResultID: "c", Position: intPtr(1)},
		{ResultID: "d", Position: intPtr(3)},
		{ResultID: "e", Position: nil},
		{ResultID: "f", Position: intPtr(2)},
	}

	SortWinners(winners)

	assert.Equal(t, []string{"c", "f", "b", "d", "a", "e"}, winnerIDs(winners))
}

func TestFilterCardsByCategory_UsesSameNormalization(t *testing.T) {
	results := []models.Result{
		{ID: "R1", EventID: "E1", StudentID: strPtr("S1"), Published: true},
		{ID: "R2", EventID: "E2", TeamID: strPtr("T2"), Published: true},
		{ID: "R3", EventID: "E4", StudentID: strPtr("S3"), Published: true},
	}
	cards := GroupResultsByEvent(fixtureEvents(), results, fixtureStudents(), fixtureTeams())

	sub := FilterCardsByCategory(cards, "SUBJUNIOR")
	require.Len(t, sub, 1)
	assert.Equal(t, "E2", sub[0].Event.ID)

	general := FilterCardsByCategory(cards, "General")
	require.Len(t, general, 1)
	assert.Equal(t, "E4", general[0].Event.ID)

	assert.Len(t, FilterCardsByCategory(cards, ""), 3)
}

func winnerIDs(winners []models.Winner) []string {
	ids := make([]string, len(winners))
	for i, w := range winners {
		ids[i] = w.ResultID
	}
	return ids
}
