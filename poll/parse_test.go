package poll

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCreate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    CreateCommand
		wantErr bool
	}{
		{
			name: "question and two options",
			text: "/vote Best color | Red | Blue",
			want: CreateCommand{Question: "Best color", Options: []string{"Red", "Blue"}},
		},
		{
			name: "options keep declared order",
			text: "/vote Best color | Red | Blue | Green",
			want: CreateCommand{Question: "Best color", Options: []string{"Red", "Blue", "Green"}},
		},
		{
			name: "whitespace trimmed, empty segments dropped",
			text: "/vote  Best color |  Red  | | Blue ",
			want: CreateCommand{Question: "Best color", Options: []string{"Red", "Blue"}},
		},
		{
			name: "channel override",
			text: "/vote channel -1001234567890 Best color | Red | Blue",
			want: CreateCommand{
				Question:   "Best color",
				Options:    []string{"Red", "Blue"},
				ChannelID:  -1001234567890,
				HasChannel: true,
			},
		},
		{
			name:    "channel override with non-numeric id",
			text:    "/vote channel nope Best color | Red | Blue",
			wantErr: true,
		},
		{
			name:    "channel override without payload",
			text:    "/vote channel -1001234567890",
			wantErr: true,
		},
		{
			name:    "single option",
			text:    "/vote Best color | Red",
			wantErr: true,
		},
		{
			name:    "no payload",
			text:    "/vote",
			wantErr: true,
		},
		{
			name:    "only separators",
			text:    "/vote | | |",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCreate(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    QueryCommand
		wantErr bool
	}{
		{name: "no arguments", text: "/vote_results", want: QueryCommand{}},
		{name: "poll id", text: "/vote_results ab12cd34", want: QueryCommand{PollID: "ab12cd34"}},
		{
			name: "channel filter",
			text: "/vote_close channel -1001234567890",
			want: QueryCommand{ChannelID: -1001234567890, HasChannel: true},
		},
		{name: "channel without id", text: "/vote_results channel", wantErr: true},
		{name: "channel with non-numeric id", text: "/vote_results channel nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    CallbackCommand
		wantErr bool
	}{
		{
			name: "toggle",
			data: "vote:ab12cd34:2",
			want: CallbackCommand{PollID: "ab12cd34", OptionIndex: 2},
		},
		{
			name: "confirm",
			data: "vote_confirm:ab12cd34",
			want: CallbackCommand{PollID: "ab12cd34", Confirm: true},
		},
		{name: "unknown prefix", data: "menu:open", wantErr: true},
		{name: "toggle without index", data: "vote:ab12cd34", wantErr: true},
		{name: "toggle with non-numeric index", data: "vote:ab12cd34:x", wantErr: true},
		{name: "confirm without poll id", data: "vote_confirm:", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCallback(tt.data)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
