package model

import "testing"

func TestContentType_IsValid(t *testing.T) {
	tests := []struct {
		contentType ContentType
		expected    bool
	}{
		{ContentTypeMovie, true},
		{ContentTypeVideo, true},
		{ContentTypeTVShow, true},
		{ContentTypeMusic, true},
		{ContentTypePodcast, true},
		{ContentTypeSoftware, true},
		{ContentTypeBook, true},
		{ContentTypeCollection, true},
		{ContentType("tv-show"), false},
		{ContentType(""), false},
	}

	for _, test := range tests {
		result := test.contentType.IsValid()
		if result != test.expected {
			t.Errorf("ContentType(%q).IsValid() = %v, expected %v", test.contentType, result, test.expected)
		}
	}
}

func TestContentType_IsVideo(t *testing.T) {
	tests := []struct {
		contentType ContentType
		expected    bool
	}{
		{ContentTypeMovie, true},
		{ContentTypeTVShow, true},
		{ContentTypeVideo, true},
		{ContentTypeMusic, false},
		{ContentTypeBook, false},
		{ContentTypeCollection, false},
	}

	for _, test := range tests {
		result := test.contentType.IsVideo()
		if result != test.expected {
			t.Errorf("ContentType(%s).IsVideo() = %v, expected %v", test.contentType, result, test.expected)
		}
	}
}

func TestContentType_String(t *testing.T) {
	expected := "tv_show"
	result := ContentTypeTVShow.String()

	if result != expected {
		t.Errorf("ContentType.String() = %s, expected %s", result, expected)
	}
}

func TestAllContentTypes_Order(t *testing.T) {
	all := AllContentTypes()
	if len(all) != 8 {
		t.Fatalf("Expected 8 content types, got %d", len(all))
	}
	if all[0] != ContentTypeMovie || all[len(all)-1] != ContentTypeCollection {
		t.Errorf("Unexpected order: %v", all)
	}

	// Callers may mutate the returned slice
	all[0] = ContentTypeBook
	if AllContentTypes()[0] != ContentTypeMovie {
		t.Error("AllContentTypes should return a fresh slice")
	}
}
