package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"stagelink/internal/models"
	"stagelink/internal/rules"
)

// run restores the saved session and dispatches the command. A dead or
// expired session degrades to guest instead of failing the command.
func (app *application) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("no command given")
	}

	if err := app.auth.Rehydrate(ctx); err != nil {
		app.errorLog.Printf("session rehydration failed: %v", err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return app.cmdLogin(ctx, rest)
	case "register":
		return app.cmdRegister(ctx, rest)
	case "logout":
		if err := app.auth.Logout(); err != nil {
			return err
		}
		app.infoLog.Println("logged out")
		return nil
	case "whoami":
		return app.cmdWhoami()
	case "user":
		return app.cmdUser(ctx, rest)
	case "home":
		return app.cmdHome(ctx)
	case "offers":
		return app.cmdOffers(ctx)
	case "offer":
		return app.cmdOffer(ctx, rest)
	case "apply":
		return app.cmdApply(ctx, rest)
	case "chat":
		return app.cmdChat(ctx, rest)
	case "approve-chat":
		return app.cmdApproveChat(ctx, rest)
	case "accept":
		return app.cmdAccept(ctx, rest)
	case "conclude":
		return app.cmdConclude(ctx, rest)
	case "review":
		return app.cmdReview(ctx, rest)
	case "delete-review":
		return app.cmdDeleteReview(ctx, rest)
	case "profile":
		return app.cmdProfile(ctx, rest)
	case "delete-account":
		return app.cmdDeleteAccount(ctx, rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (app *application) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := app.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	app.infoLog.Printf("logged in as %s (%s, id %d)", user.Name, user.Role, user.ID)
	return nil
}

func (app *application) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "performer or distributor")
	name := fs.String("name", "", "display name")
	city := fs.String("city", "", "home city")
	capacity := fs.Int("capacity", 0, "venue capacity")
	fs.Parse(args)

	user, err := app.auth.Register(ctx, models.RegisterRequest{
		Email:    *email,
		Password: *password,
		Role:     *role,
		Name:     *name,
		City:     *city,
		Capacity: *capacity,
	})
	if err != nil {
		return err
	}
	if user != nil {
		app.infoLog.Printf("registered %s (id %d)", user.Name, user.ID)
	} else {
		app.infoLog.Println("registered, log in to continue")
	}
	return nil
}

func (app *application) cmdWhoami() error {
	user := app.stateStore.CurrentUser()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (%s, id %d)\n", user.Name, user.Role, user.ID)
	return nil
}

func (app *application) cmdUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("user needs a user id")
	}
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad user id %q", args[0])
	}

	user, err := app.apiClient.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, id %d)\n", user.Name, user.Role, user.ID)
	if user.City != "" {
		fmt.Printf("  city: %s\n", user.City)
	}
	if user.Genre != "" {
		fmt.Printf("  genre: %s\n", user.Genre)
	}
	if user.RatingCount > 0 {
		fmt.Printf("  rating: %.1f over %d reviews\n", user.RatingAvg, user.RatingCount)
	}

	reviews, err := app.apiClient.UserReviews(ctx, userID)
	if err != nil {
		printReviews(nil, err.Error())
		return nil
	}
	printReviews(reviews, "")
	return nil
}

func (app *application) cmdHome(ctx context.Context) error {
	data, err := app.home.Load(ctx)
	if err != nil {
		return err
	}

	printUsers("Newest performers", data.Performers, data.PerformersErr)
	printUsers("Newest venues", data.Venues, data.VenuesErr)
	if data.Offers != nil || data.OffersErr != "" {
		printOffers("Recent offers", data.Offers, data.OffersErr)
	}
	return nil
}

func (app *application) cmdOffers(ctx context.Context) error {
	data, err := app.offers.Load(ctx)
	if err != nil {
		return err
	}

	printOffers(fmt.Sprintf("Created (%d)", data.CreatedTotal), append(data.CreatedActive, data.CreatedFinalized...), "")
	printOffers(fmt.Sprintf("Applied (%d)", data.AppliedTotal), append(data.AppliedActive, data.AppliedFinalized...), "")
	return nil
}

func (app *application) cmdOffer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("offer needs a subcommand: show or create")
	}
	switch args[0] {
	case "show":
		if len(args) < 2 {
			return errors.New("offer show needs an offer id")
		}
		offerID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad offer id %q", args[1])
		}
		return app.cmdOfferShow(ctx, offerID)
	case "create":
		return app.cmdOfferCreate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown offer subcommand %q", args[0])
	}
}

func (app *application) cmdOfferShow(ctx context.Context, offerID int) error {
	data, err := app.details(offerID).Load(ctx)
	if err != nil {
		return err
	}

	o := data.Offer
	fmt.Printf("#%d %s\n", o.ID, o.Title)
	fmt.Printf("  %s, %s [%s]\n", o.VenueName, o.City, o.Status)
	if o.Description != "" {
		fmt.Printf("  %s\n", o.Description)
	}
	if o.Budget > 0 {
		fmt.Printf("  budget %.2f\n", o.Budget)
	}
	if !o.EventDate.IsZero() {
		fmt.Printf("  event %s\n", o.EventDate.Format("2006-01-02 15:04"))
	}

	if data.Matches != nil || data.MatchesErr != "" {
		printMatches(data.Matches, data.MatchesErr)
	}
	switch {
	case data.ChatBlocked:
		fmt.Println("Chat: waiting for venue approval")
	case data.MessagesErr != "":
		fmt.Printf("Chat: %s\n", data.MessagesErr)
	default:
		printMessages(data.Messages)
	}
	if data.CanReview {
		fmt.Printf("You can review user %d for this offer\n", data.ReviewTargetID)
	}
	return nil
}

func (app *application) cmdOfferCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("offer create", flag.ExitOnError)
	title := fs.String("title", "", "offer title")
	description := fs.String("description", "", "offer description")
	city := fs.String("city", "", "city")
	venue := fs.String("venue", "", "venue name")
	genre := fs.String("genre", "", "genre")
	budget := fs.Float64("budget", 0, "budget")
	date := fs.String("date", "", "event date, e.g. 2026-09-15T21:00")
	capacity := fs.Int("capacity", 0, "capacity")
	fs.Parse(args)

	if *title == "" || *city == "" || *venue == "" || *date == "" {
		return errors.New("title, city, venue and date are required")
	}
	offer, err := app.profile.CreateOffer(ctx, models.OfferDraft{
		Title:       *title,
		Description: *description,
		City:        *city,
		VenueName:   *venue,
		Genre:       *genre,
		Budget:      *budget,
		EventDate:   *date,
		Capacity:    *capacity,
	})
	if err != nil {
		return err
	}
	app.infoLog.Printf("created offer #%d %q", offer.ID, offer.Title)
	return nil
}

func (app *application) cmdApply(ctx context.Context, args []string) error {
	offerID, rest, err := leadingID(args, "apply")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	rate := fs.Float64("rate", -1, "your rate for the gig")
	message := fs.String("message", "", "note to the venue")
	fs.Parse(rest)

	match, err := app.details(offerID).Apply(ctx, *rate, *message)
	if err != nil {
		return err
	}
	app.infoLog.Printf("applied to offer #%d, match %d is %s", offerID, match.ID, match.Status)
	return nil
}

func (app *application) cmdChat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	offerID := fs.Int("offer", 0, "offer thread to open")
	send := fs.String("send", "", "message to send")
	fs.Parse(args)

	if err := app.chat.Open(ctx); err != nil {
		return err
	}
	if *offerID != 0 {
		if err := app.chat.SetActiveOffer(ctx, *offerID); err != nil {
			return err
		}
	}
	if *send != "" {
		if err := app.chat.Send(ctx, *send); err != nil {
			return err
		}
	}

	snap := app.chat.Snapshot()
	if snap.OffersErr != "" {
		return errors.New(snap.OffersErr)
	}
	if len(snap.Offers) == 0 {
		fmt.Println("no offers to chat about yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS")
	for _, o := range snap.Offers {
		marker := " "
		if o.ID == snap.ActiveOfferID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%d\t%s\t%s\n", marker, o.ID, o.Title, o.Status)
	}
	w.Flush()

	switch {
	case snap.Blocked:
		fmt.Println("Chat: waiting for venue approval")
	case snap.MessagesErr != "":
		fmt.Printf("Chat: %s\n", snap.MessagesErr)
	default:
		printMessages(snap.Messages)
	}
	return nil
}

func (app *application) cmdApproveChat(ctx context.Context, args []string) error {
	offerID, rest, err := leadingID(args, "approve-chat")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("approve-chat", flag.ExitOnError)
	performerID := fs.Int("performer", 0, "performer to approve")
	revoke := fs.Bool("revoke", false, "revoke instead of approve")
	fs.Parse(rest)
	if *performerID == 0 {
		return errors.New("-performer is required")
	}

	matches, err := app.details(offerID).ApproveChat(ctx, *performerID, !*revoke)
	if err != nil {
		return err
	}
	printMatches(matches, "")
	return nil
}

func (app *application) cmdAccept(ctx context.Context, args []string) error {
	offerID, rest, err := leadingID(args, "accept")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("accept", flag.ExitOnError)
	performerID := fs.Int("performer", 0, "performer to accept")
	fs.Parse(rest)
	if *performerID == 0 {
		return errors.New("-performer is required")
	}

	offer, err := app.details(offerID).Accept(ctx, *performerID)
	if err != nil {
		return err
	}
	app.infoLog.Printf("offer #%d accepted performer %d", offer.ID, offer.AcceptedPerformerID)
	return nil
}

func (app *application) cmdConclude(ctx context.Context, args []string) error {
	offerID, rest, err := leadingID(args, "conclude")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("conclude", flag.ExitOnError)
	status := fs.String("status", rules.StatusClosed, "closed or cancelled")
	fs.Parse(rest)

	view := app.details(offerID)
	current, err := view.API.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	offer, err := view.Conclude(ctx, current, *status)
	if err != nil {
		return err
	}
	app.infoLog.Printf("offer #%d is now %s", offer.ID, offer.Status)
	return nil
}

func (app *application) cmdReview(ctx context.Context, args []string) error {
	offerID, rest, err := leadingID(args, "review")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	score := fs.Int("score", 0, "score 1-5")
	comment := fs.String("comment", "", "review text")
	fs.Parse(rest)

	view := app.details(offerID)
	offer, err := view.API.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	review, err := view.SubmitReview(ctx, offer, *score, *comment)
	if err != nil {
		return err
	}
	app.infoLog.Printf("review %d submitted for user %d", review.ID, review.RatedID)
	return nil
}

func (app *application) cmdDeleteReview(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("delete-review needs a review id")
	}
	reviewID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad review id %q", args[0])
	}
	if err := app.apiClient.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	app.infoLog.Printf("review %d deleted", reviewID)
	return nil
}

func (app *application) cmdProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "update" {
		return app.cmdProfileUpdate(ctx, args[1:])
	}

	data, err := app.profile.Load(ctx)
	if err != nil {
		return err
	}
	u := data.User
	fmt.Printf("%s (%s, id %d)\n", u.Name, u.Role, u.ID)
	if u.City != "" {
		fmt.Printf("  city: %s\n", u.City)
	}
	if u.RatingCount > 0 {
		fmt.Printf("  rating: %.1f over %d reviews\n", u.RatingAvg, u.RatingCount)
	}
	printReviews(data.Reviews, data.ReviewsErr)
	if data.CityOffers != nil || data.CityOffersErr != "" {
		printOffers("Open offers in "+u.City, data.CityOffers, data.CityOffersErr)
	}
	return nil
}

func (app *application) cmdProfileUpdate(ctx context.Context, args []string) error {
	current := app.stateStore.CurrentUser()
	if current == nil {
		return models.ErrNotLoggedIn
	}

	fs := flag.NewFlagSet("profile update", flag.ExitOnError)
	name := fs.String("name", current.Name, "display name")
	city := fs.String("city", current.City, "home city")
	email := fs.String("email", current.Email, "account email")
	slogan := fs.String("slogan", current.Slogan, "slogan")
	bio := fs.String("bio", current.Bio, "bio")
	capacity := fs.Int("capacity", current.Capacity, "venue capacity")
	fs.Parse(args)

	updated, err := app.profile.Save(ctx, models.ProfileUpdate{
		Name:     *name,
		City:     *city,
		Email:    *email,
		Role:     current.Role,
		Slogan:   *slogan,
		Bio:      *bio,
		Capacity: *capacity,
	})
	if err != nil {
		return err
	}
	app.infoLog.Printf("profile saved for %s", updated.Name)
	return nil
}

func (app *application) cmdDeleteAccount(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-account", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm the deletion")
	fs.Parse(args)
	if !*yes {
		return errors.New("pass -yes to confirm account deletion")
	}
	if err := app.profile.DeleteAccount(ctx); err != nil {
		return err
	}
	app.infoLog.Println("account deleted")
	return nil
}

// leadingID pulls the positional <offerId> that precedes a subcommand's
// flags.
func leadingID(args []string, cmd string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%s needs an offer id", cmd)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("bad offer id %q", args[0])
	}
	return id, args[1:], nil
}

func printUsers(title string, users []models.User, errMsg string) {
	fmt.Println(title)
	if errMsg != "" {
		fmt.Printf("  error: %s\n", errMsg)
		return
	}
	if len(users) == 0 {
		fmt.Println("  none yet")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tCITY\tRATING")
	for _, u := range users {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.1f (%d)\n", u.ID, u.Name, u.City, u.RatingAvg, u.RatingCount)
	}
	w.Flush()
}

func printOffers(title string, offers []models.Offer, errMsg string) {
	fmt.Println(title)
	if errMsg != "" {
		fmt.Printf("  error: %s\n", errMsg)
		return
	}
	if len(offers) == 0 {
		fmt.Println("  none yet")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tCITY\tSTATUS\tMATCH")
	for _, o := range offers {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", o.ID, o.Title, o.City, o.Status, o.MatchStatus)
	}
	w.Flush()
}

func printMatches(matches []models.Match, errMsg string) {
	fmt.Println("Applicants")
	if errMsg != "" {
		fmt.Printf("  error: %s\n", errMsg)
		return
	}
	if len(matches) == 0 {
		fmt.Println("  none yet")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  PERFORMER\tRATE\tSTATUS\tCHAT")
	for _, m := range matches {
		chat := "blocked"
		if m.ChatApproved {
			chat = "approved"
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%s\t%s\n", m.PerformerID, m.Rate, m.Status, chat)
	}
	w.Flush()
}

func printMessages(messages []models.Message) {
	if len(messages) == 0 {
		fmt.Println("Chat: no messages yet")
		return
	}
	fmt.Println("Chat")
	for _, m := range messages {
		fmt.Printf("  [%d] %s\n", m.AuthorID, m.Body)
	}
}

func printReviews(reviews []models.Review, errMsg string) {
	fmt.Println("Reviews")
	if errMsg != "" {
		fmt.Printf("  error: %s\n", errMsg)
		return
	}
	if len(reviews) == 0 {
		fmt.Println("  none yet")
		return
	}
	for _, r := range reviews {
		fmt.Printf("  %d/5 from user %d", r.Score, r.RaterID)
		if r.Comment != "" {
			fmt.Printf(": %s", r.Comment)
		}
		fmt.Println()
	}
}
