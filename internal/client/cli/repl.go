package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Jobs(ctx context.Context) error
	Courses(ctx context.Context) error
	MatchedJobs(ctx context.Context) error
	MatchedCourses(ctx context.Context) error
	Attendance(ctx context.Context) error
	MarkAttendance(ctx context.Context, status string) error
	Chat(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	UploadResume(ctx context.Context, path string) error
	UploadImage(ctx context.Context, path string) error
	Register(ctx context.Context) error
	AddJob(ctx context.Context) error
	AddCourse(ctx context.Context) error
	Summary(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CareerMate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                        — show available commands
//	  - login                       — authenticate
//	  - exit | quit                 — leave the program
//
//	Logged in:
//	  - whoami                      — show the current profile
//	  - jobs | courses              — list all opportunities
//	  - matches | recommended       — opportunities matching your skills
//	  - attendance                  — show attendance history
//	  - mark <Present|Absent>       — mark today's attendance
//	  - chat                        — ask the career assistant
//	  - profile                     — update profile fields
//	  - upload resume|image <path>  — upload a file
//	  - logout, exit | quit
//
//	Admin only:
//	  - register | addjob | addcourse | summary
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "courses":
			_ = a.Courses(ctx)

		case "matches":
			_ = a.MatchedJobs(ctx)

		case "recommended":
			_ = a.MatchedCourses(ctx)

		case "attendance":
			_ = a.Attendance(ctx)

		case "mark":
			if len(args) == 0 {
				printlnFn("Usage: mark <Present|Absent>")
				continue
			}
			_ = a.MarkAttendance(ctx, args[0])

		case "chat":
			_ = a.Chat(ctx)

		case "profile":
			_ = a.UpdateProfile(ctx)

		case "upload":
			if len(args) < 2 {
				printlnFn("Usage: upload resume|image <path>")
				continue
			}
			switch args[0] {
			case "resume":
				_ = a.UploadResume(ctx, args[1])
			case "image":
				_ = a.UploadImage(ctx, args[1])
			default:
				printlnFn("Usage: upload resume|image <path>")
			}

		case "register":
			_ = a.Register(ctx)

		case "addjob":
			_ = a.AddJob(ctx)

		case "addcourse":
			_ = a.AddCourse(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, exit")
		return
	}
	printlnFn("Available commands: whoami, jobs, courses, matches, recommended, attendance, mark, chat, profile, upload, logout, exit")
	if a.isAdmin() {
		printlnFn("Admin commands: register, addjob, addcourse, summary")
	}
}
