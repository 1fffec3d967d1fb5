// Package content holds the heuristic texts and the navigation rules between them.
package content

// Title is the page heading.
const Title = "Snacksized Personal Learnings, Served on a Turtleshell."

// Intro is shown on the home page (index 0).
var Intro = []string{
	"This is an open source collection of personal learnings and principles I've collected over the years.",
	"They are shared here in the hope that they might serve as basic heuristics enabling others to create their own set of principles.",
	"Be mindful: no advice applies universally.",
	"— Joen, October 2019",
}

// Heuristic is one aphorism with an optional attribution.
type Heuristic struct {
	Text        string
	Attribution string
}

var heuristics = []Heuristic{
	{Text: "If you want to count the stars in the sky, just start counting.", Attribution: "Selma, age 6"},
	{Text: "Be careful to not get caught up chasing someone else's dream. It's probably a distraction from what really gets you up in the morning."},
	{Text: "You can do amazing things. Just not all at once. But don't let this discourage you from accomplishing what's under your control."},
	{Text: "Good design has gravity. The more you work on it, the more gravity it gets. At some point, the pieces start falling into place on their own."},
	{Text: "The best design is invisible. It is functional to the point that you forget how it works, you just use it. You might even forget it took effort to invent once upon a time. Such it is: if you do things right, people won't know you've done anything at all."},
	{Text: "When working on difficult designs, it's important to believe that answers are out there, that finding them is a matter of time and effort rather than hope and random chance. Keep exploring until the fog lifts, and eventually answers will present themselves."},
	{Text: "Bruce Mau says: begin anywhere. Depending on the complexity of the project, you might want to start with what is easiest or indeed what is hardest."},
	{Text: "Talk alone does not move mountains. You can suggest moving the mountain is a priority. You can suggest that without a clear plan for moving the mountain, the project is never going to get off the ground. All of that may be true and agreed upon. But none of that is actually going to move the mountain. Sometimes you just have to grab a shovel and a wheelbarrow and start working."},
	{Text: "Every thing around you is made by someone. Which means it can be made better still. It also means unless you're willing to make it better, it's likely going to stay the way it is."},
	{Text: "Ideas are a renewable resource. Spend them as you get them, don't save them for rainy days. Besides, they have a tendency to be brittle when meeting with reality. Ideas are rarely as valuable as you might think."},
	{Text: "Whitespace has intrinsic value, both in design and in life. As you work to free up space, be mindful that the newly reclaimed land isn't immediately consumed by something else swooping in to fill the void. Radiohead and Marie Kondo both agree: strive to put everything in it's right place."},
	{Text: "Sometimes it's good to follow an idea to the end, even if the idea turns out to be a dud. An old friend of mine used to say there's no such thing as wasted work. This is true, because you'll have cauterized that avenue of exploration; you'll know for sure that idea wasn't the one you needed. But it might resurface in the future, in a different form."},
	{Text: "If it doesn't work, it's not real. Whatever design you are working on has to meet with reality at some point, and this process is messy, full of compromises, and a crucial step of the process."},
	{Text: "There is a great danger in a design process that is purely driven by data. It might feel like data always drives the right work, but data ignores the magic that has to happen in order for truly great solutions to be imagined."},
	{Text: "Kirk and Spock were better together. Kirk represented action, Spock brought the other end of the spectrum, strategy. Their dynamic put them square in the middle, perfectly balanced. Either extreme is tempting. But without the strategy, the action is likely to fail. And without action, the the strategy is meaningless."},
	{Text: "When you say yes, say yes deeply."},
	{Text: "My grandfather used to say: get a good chair, because you can't always be motivated, and sometimes you have to sit on it until you're done."},
	{Text: "In software development, committing code is a great way to progress out of a mire. Often times it's faster to build and test two proposed but conflicting directions, than it is to discuss which one to pursue."},
	{Text: "Share knowledge, then there will be more of it, as my grandfather used to say."},
	{Text: "No job requires you to be unkind."},
	{Text: "Sleep makes everything better, don't underestimate its powers of healing. Get as much of it as you can."},
	{Text: "Every day is a chance to start anew. Consider the person you want to be, and if what you see in the mirror today is not where you want to be, it is never too late to start correcting mistakes, making amends, working to live a life you can be proud of."},
	{Text: "A career is not a zero sum game. Others can succeed without that impeding your own success. In fact often helping others be successful will help you many times over in the long run."},
	{Text: "Consider that whatever shortcomings we perceive about our individual situations often originate from human ideals that change like the seasons. Don't allow them to put you down."},
	{Text: "Having principles is important. Being open to changing them in light of new information is even more important. Everything changes, despite our best wishes for things to stay the same. Closing oneself off from revisiting strongly held convictions is just going to make the ongoing change that much more painful."},
	{Text: "Automate. Almost no task is too small to automate, you'll be surprised how much time it'll save you in the long term."},
	{Text: "If your feedback is worth sharing, it's worth more than 2 cents."},
	{Text: "You don't have to have an opinion on everything. And you don't even have to have a strong opinion when you do have one. You can't know or do everything, which is why it's so fortunate that you can work with people who complete you. If you let them."},
	{Text: "Leadership does not require a title."},
}

// Count returns the number of heuristics, excluding the intro.
func Count() int {
	return len(heuristics)
}

// Get returns the heuristic at a 1-based index.
func Get(index int) (Heuristic, bool) {
	if index < 1 || index > len(heuristics) {
		return Heuristic{}, false
	}
	return heuristics[index-1], true
}

// Paragraphs returns the text blocks for an index: the intro for 0,
// the heuristic (and its attribution) for 1..Count.
func Paragraphs(index int) ([]string, bool) {
	if index == 0 {
		out := make([]string, len(Intro))
		copy(out, Intro)
		return out, true
	}
	h, ok := Get(index)
	if !ok {
		return nil, false
	}
	if h.Attribution == "" {
		return []string{h.Text}, true
	}
	return []string{h.Text, "— " + h.Attribution}, true
}
