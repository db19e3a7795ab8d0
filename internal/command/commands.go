package command

import (
	"strings"

	"github.com/PizzaHomicide/reel/internal/service"
)

// Name identifies a command that can be typed at the prompt
type Name string

const (
	NumberOfVideos      Name = "NUMBER_OF_VIDEOS"
	ShowAllVideos       Name = "SHOW_ALL_VIDEOS"
	Play                Name = "PLAY"
	Stop                Name = "STOP"
	PlayRandom          Name = "PLAY_RANDOM"
	Pause               Name = "PAUSE"
	Continue            Name = "CONTINUE"
	ShowPlaying         Name = "SHOW_PLAYING"
	CreatePlaylist      Name = "CREATE_PLAYLIST"
	AddToPlaylist       Name = "ADD_TO_PLAYLIST"
	ShowAllPlaylists    Name = "SHOW_ALL_PLAYLISTS"
	ShowPlaylist        Name = "SHOW_PLAYLIST"
	RemoveFromPlaylist  Name = "REMOVE_FROM_PLAYLIST"
	ClearPlaylist       Name = "CLEAR_PLAYLIST"
	DeletePlaylist      Name = "DELETE_PLAYLIST"
	SearchVideos        Name = "SEARCH_VIDEOS"
	SearchVideosWithTag Name = "SEARCH_VIDEOS_WITH_TAG"
	FlagVideo           Name = "FLAG_VIDEO"
	AllowVideo          Name = "ALLOW_VIDEO"
	Help                Name = "HELP"
	Exit                Name = "EXIT"
)

// variadic marks a command that accepts any number of arguments past its minimum
const variadic = -1

// Command describes one entry of the command table
type Command struct {
	Name    Name
	Args    string // Argument synopsis for the help screen
	Help    string
	MinArgs int
	MaxArgs int
	run     func(s *service.Session, args []string)
}

// Usage renders the command and its arguments, e.g. `PLAY <video_id>`
func (c Command) Usage() string {
	if c.Args == "" {
		return string(c.Name)
	}
	return string(c.Name) + " " + c.Args
}

func (c Command) accepts(n int) bool {
	return n >= c.MinArgs && (c.MaxArgs == variadic || n <= c.MaxArgs)
}

// commandTable lists every session command in the order they are shown on the help screen.  HELP and EXIT are
// handled by the dispatcher itself.
var commandTable = []Command{
	{
		Name: NumberOfVideos,
		Help: "Shows how many videos are in the library.",
		run:  func(s *service.Session, _ []string) { s.Library.Count() },
	},
	{
		Name: ShowAllVideos,
		Help: "Lists all videos from the library.",
		run:  func(s *service.Session, _ []string) { s.Library.ShowAll() },
	},
	{
		Name:    Play,
		Args:    "<video_id>",
		Help:    "Plays specified video.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Playback.Play(args[0]) },
	},
	{
		Name: PlayRandom,
		Help: "Plays a random video from the library.",
		run:  func(s *service.Session, _ []string) { s.Playback.PlayRandom() },
	},
	{
		Name: Stop,
		Help: "Stop the current video.",
		run:  func(s *service.Session, _ []string) { s.Playback.Stop() },
	},
	{
		Name: Pause,
		Help: "Pause the current video.",
		run:  func(s *service.Session, _ []string) { s.Playback.Pause() },
	},
	{
		Name: Continue,
		Help: "Resume the current paused video.",
		run:  func(s *service.Session, _ []string) { s.Playback.Resume() },
	},
	{
		Name: ShowPlaying,
		Help: "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).",
		run:  func(s *service.Session, _ []string) { s.Playback.ShowCurrent() },
	},
	{
		Name:    CreatePlaylist,
		Args:    "<playlist_name>",
		Help:    "Creates a new (empty) playlist with the provided name.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Playlists.Create(args[0]) },
	},
	{
		Name:    AddToPlaylist,
		Args:    "<playlist_name> <video_id>",
		Help:    "Adds the requested video to the playlist.",
		MinArgs: 2, MaxArgs: 2,
		run: func(s *service.Session, args []string) { s.Playlists.Add(args[0], args[1]) },
	},
	{
		Name:    RemoveFromPlaylist,
		Args:    "<playlist_name> <video_id>",
		Help:    "Removes the specified video from the specified playlist",
		MinArgs: 2, MaxArgs: 2,
		run: func(s *service.Session, args []string) { s.Playlists.Remove(args[0], args[1]) },
	},
	{
		Name:    ClearPlaylist,
		Args:    "<playlist_name>",
		Help:    "Removes all videos from the specified playlist",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Playlists.Clear(args[0]) },
	},
	{
		Name:    DeletePlaylist,
		Args:    "<playlist_name>",
		Help:    "Deletes the playlist.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Playlists.Delete(args[0]) },
	},
	{
		Name:    ShowPlaylist,
		Args:    "<playlist_name>",
		Help:    "List all the videos in the specified playlist.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Playlists.Show(args[0]) },
	},
	{
		Name: ShowAllPlaylists,
		Help: "Display all the available playlists.",
		run:  func(s *service.Session, _ []string) { s.Playlists.ListAll() },
	},
	{
		Name:    SearchVideos,
		Args:    "<search_term>",
		Help:    "Display all the videos whose titles contain the search_term.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Search.SearchTitle(args[0]) },
	},
	{
		Name:    SearchVideosWithTag,
		Args:    "<tag_name>",
		Help:    "Display all videos whose tags contains the provided tag.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Search.SearchTag(args[0]) },
	},
	{
		Name:    FlagVideo,
		Args:    "<video_id> [flag_reason]",
		Help:    "Mark a video as flagged.",
		MinArgs: 1, MaxArgs: variadic,
		run: func(s *service.Session, args []string) {
			s.Moderation.Flag(args[0], strings.Join(args[1:], " "))
		},
	},
	{
		Name:    AllowVideo,
		Args:    "<video_id>",
		Help:    "Removes a flag from a video.",
		MinArgs: 1, MaxArgs: 1,
		run: func(s *service.Session, args []string) { s.Moderation.Allow(args[0]) },
	},
	{
		Name: Help,
		Help: "Displays help.",
	},
	{
		Name: Exit,
		Help: "Terminates the program execution.",
	},
}

// Commands returns a copy of the command table
func Commands() []Command {
	return append([]Command(nil), commandTable...)
}

// Lookup finds a command by name, ignoring case
func Lookup(name string) (Command, bool) {
	upper := Name(strings.ToUpper(name))
	for _, c := range commandTable {
		if c.Name == upper {
			return c, true
		}
	}
	return Command{}, false
}

// HelpText renders the help screen
func HelpText() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commandTable {
		b.WriteString("    " + c.Usage() + " - " + c.Help + "\n")
	}
	return b.String()
}
