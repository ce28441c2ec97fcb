package transcript

import (
	"reflect"
	"testing"
)

// --- Tests pour l'overlay label/identité -----------------------------------

func TestApplySpeakerLabels_RenameKeepsIdentity(t *testing.T) {
	segments := []Segment{
		seg(0, 1, "SPEAKER_00", "hello"),
		seg(1, 2, "SPEAKER_01", "hi"),
	}

	out := ApplySpeakerLabels(segments, map[string]string{"SPEAKER_00": "Alice"})

	if out[0].Speaker != "Alice" || out[0].OriginalSpeaker != "SPEAKER_00" {
		t.Errorf("segment 0: %+v", out[0])
	}
	// entrée absente du mapping : identifiant interne affiché tel quel
	if out[1].Speaker != "SPEAKER_01" || out[1].OriginalSpeaker != "" {
		t.Errorf("segment 1: %+v", out[1])
	}
	// copy-on-transform : l'entrée reste intacte
	if segments[0].Speaker != "SPEAKER_00" {
		t.Errorf("entrée mutée: %+v", segments[0])
	}
}

func TestApplySpeakerLabels_SecondRenameKeyedOnInternalID(t *testing.T) {
	segments := []Segment{seg(0, 1, "SPEAKER_00", "hello")}

	once := ApplySpeakerLabels(segments, map[string]string{"SPEAKER_00": "Alice"})
	// le second renommage est keyé sur l'identifiant interne, pas sur "Alice"
	twice := ApplySpeakerLabels(once, map[string]string{"SPEAKER_00": "Bob"})

	if twice[0].Speaker != "Bob" {
		t.Errorf("speaker = %q; want %q", twice[0].Speaker, "Bob")
	}
	if twice[0].OriginalSpeaker != "SPEAKER_00" {
		t.Errorf("originalSpeaker = %q; want %q (posé une fois, jamais écrasé)",
			twice[0].OriginalSpeaker, "SPEAKER_00")
	}
}

// Le renommage ne doit jamais influencer le regroupement : deux locuteurs
// internes distincts renommés vers le même label d'affichage produisent
// toujours deux paragraphes.
func TestRelabelingDoesNotAffectGrouping(t *testing.T) {
	segments := []Segment{
		seg(0, 1, "SPEAKER_00", "hello"),
		seg(1, 2, "SPEAKER_01", "hi"),
	}
	labels := map[string]string{"SPEAKER_00": "Team", "SPEAKER_01": "Team"}

	relabeled := ApplySpeakerLabels(segments, labels)
	paragraphs := DetectParagraphs(relabeled, 0.8)

	if len(paragraphs) != 2 {
		t.Fatalf("%d paragraphes; want 2 (identités internes distinctes) : %#v",
			len(paragraphs), paragraphs)
	}
	if paragraphs[0].Speaker != "Team" || paragraphs[0].SpeakerID() != "SPEAKER_00" {
		t.Errorf("paragraphe 0: %+v", paragraphs[0])
	}

	// le regroupement sur les segments ORIGINAUX donne la même partition
	original := DetectParagraphs(segments, 0.8)
	if len(original) != len(paragraphs) {
		t.Errorf("partitions différentes: %d vs %d", len(original), len(paragraphs))
	}
}

func TestApplyParagraphLabels(t *testing.T) {
	paragraphs := []Paragraph{
		{Speaker: "SPEAKER_00", Start: 0, End: 2, Text: "hello", SegmentCount: 1},
	}

	out := ApplyParagraphLabels(paragraphs, map[string]string{"SPEAKER_00": "Alice"})

	want := Paragraph{
		Speaker: "Alice", OriginalSpeaker: "SPEAKER_00",
		Start: 0, End: 2, Text: "hello", SegmentCount: 1,
	}
	if !reflect.DeepEqual(out[0], want) {
		t.Errorf("got %+v; want %+v", out[0], want)
	}
	if paragraphs[0].Speaker != "SPEAKER_00" {
		t.Errorf("entrée mutée: %+v", paragraphs[0])
	}
}
