package wordlist

// words is the full compiled-in pool. Entries are lowercase, between three and
// nine letters, and free of homophones and offensive terms so passphrases stay
// easy to say aloud and type.
var words = []string{
	"acorn", "acrobat", "admire", "aerial", "afar", "agenda", "agile", "aim",
	"alarm", "album", "alert", "alias", "almond", "aloft", "alpine", "amber",
	"amble", "anchor", "angle", "ankle", "antenna", "antique", "anvil", "apple",
	"apricot", "apron", "arch", "arena", "argon", "armor", "aroma", "arrow",
	"aspen", "asteroid", "athlete", "atlas", "atom", "attic", "auburn", "audio",
	"august", "aurora", "autumn", "avenue", "aviator", "avocado", "axis", "azure",
	"bacon", "badge", "bagel", "balcony", "bamboo", "banana", "banjo", "barley",
	"barn", "basalt", "basket", "baton", "bay", "beacon", "beam", "bean",
	"bedrock", "beech", "bell", "belt", "bench", "berry", "bicycle", "billow",
	"birch", "bison", "blanket", "blimp", "blossom", "bluebird", "boat", "bongo",
	"bonnet", "book", "boots", "botany", "boulder", "bounce", "bramble", "brass",
	"breeze", "brick", "bridge", "broom", "brook", "bubble", "bucket", "bugle",
	"bungalow", "bunker", "burlap", "butter", "cabin", "cable", "cactus", "cadet",
	"calico", "camera", "canal", "candle", "canoe", "canvas", "canyon", "caravan",
	"cargo", "carpet", "carrot", "cascade", "castle", "catalog", "cedar", "cello",
	"cement", "chalk", "chapel", "chart", "cherry", "chess", "chisel", "chrome",
	"cider", "cinder", "cinnamon", "citrus", "clarinet", "clay", "cliff", "clock",
	"clover", "coast", "cobalt", "cocoa", "coconut", "comet", "compass", "copper",
	"coral", "cork", "corn", "cosmos", "cotton", "cove", "coyote", "crayon",
	"creek", "cricket", "crystal", "cubic", "cypress", "daffodil", "dairy",
	"daisy", "dandelion", "dapper", "dawn", "delta", "denim", "depot", "desk",
	"dewdrop", "diagram", "dinghy", "dome", "domino", "door", "dove", "dragon",
	"drift", "drum", "dune", "dusk", "eagle", "easel", "echo", "eclipse",
	"eel", "ember", "emerald", "engine", "envelope", "era", "ermine", "exhibit",
	"fable", "falcon", "fawn", "feather", "fennel", "fern", "ferry", "fiddle",
	"fig", "finch", "fjord", "flannel", "flask", "fleet", "flint", "flora",
	"flute", "foam", "foil", "forest", "fossil", "fountain", "fox", "freight",
	"frost", "galaxy", "garden", "garnet", "gazebo", "gazelle", "gecko", "geyser",
	"ginger", "glacier", "glade", "glider", "gondola", "gong", "goose", "gourd",
	"granite", "grape", "grove", "guitar", "gull", "habitat", "hammock", "harbor",
	"harvest", "hazel", "heron", "hickory", "hill", "hollow", "honey", "hoof",
	"horizon", "hornet", "hourglass", "husk", "icicle", "igloo", "indigo",
	"ingot", "inlet", "iris", "iron", "island", "ivory", "ivy", "jade",
	"jasmine", "jasper", "jetty", "jigsaw", "jubilee", "juniper", "kayak",
	"kelp", "kettle", "keyboard", "kiln", "kite", "knapsack", "ladder", "lagoon",
	"lantern", "lapel", "larch", "lark", "laurel", "lava", "lawn", "ledge",
	"lemon", "lilac", "lily", "limber", "linen", "lintel", "lobster", "locket",
	"loft", "log", "lotus", "lumber", "lunar", "lyric", "magnet", "mallet",
	"mango", "mantle", "maple", "marble", "marigold", "marina", "mast", "meadow",
	"melon", "mesa", "mica", "mill", "mint", "mirror", "mitten", "moat",
	"mocha", "monsoon", "moose", "morning", "mosaic", "moss", "moth", "motor",
	"mulberry", "mural", "myrtle", "napkin", "nebula", "nectar", "nest", "newt",
	"nickel", "nimbus", "north", "notebook", "nugget", "nutmeg", "oak", "oasis",
	"oat", "obelisk", "ocean", "ochre", "olive", "onyx", "opal", "orchard",
	"orchid", "oregano", "oriole", "otter", "oval", "owl", "paddle", "pagoda",
	"palette", "palm", "panda", "pansy", "papaya", "parade", "parcel", "parka",
	"pasture", "patio", "peach", "peak", "pearl", "pebble", "pecan", "penguin",
	"peony", "pepper", "petal", "pewter", "phantom", "piano", "pier", "pigeon",
	"pine", "pinnacle", "pistachio", "pivot", "plank", "plateau", "platinum",
	"plaza", "plum", "pocket", "pod", "polar", "pollen", "pond", "poplar",
	"poppy", "porch", "prairie", "prism", "pueblo", "pulley", "pumpkin",
	"quail", "quarry", "quartz", "quill", "quilt", "raccoon", "radish", "raft",
	"rain", "ranch", "raspberry", "raven", "reef", "reel", "ribbon", "ridge",
	"ripple", "river", "robin", "rocket", "rope", "rose", "rudder", "rustic",
	"saddle", "saffron", "sage", "salmon", "sand", "sapling", "sapphire",
	"satchel", "scallop", "scarf", "schooner", "scooter", "seashell", "sequoia",
	"shale", "shingle", "shore", "shrub", "sienna", "silk", "silo", "silver",
	"sketch", "slate", "sled", "sleet", "smock", "snowcap", "socket", "sonnet",
	"sorrel", "spark", "sparrow", "spindle", "spool", "spruce", "squash",
	"stable", "stamp", "starling", "steam", "stone", "stork", "stream", "summit",
	"sumac", "sundial", "sunset", "surf", "swallow", "sycamore", "syrup",
	"tabby", "table", "taffy", "talon", "tangelo", "tapioca", "tarragon",
	"teak", "teal", "tempo", "tent", "terrace", "thicket", "thimble", "thistle",
	"tiger", "timber", "tin", "toad", "tomato", "torch", "totem", "trail",
	"tranquil", "trellis", "trench", "trillium", "trombone", "trout", "truffle",
	"trumpet", "tulip", "tundra", "turnip", "turret", "turtle", "twig", "twine",
	"umbrella", "urchin", "valley", "vanilla", "vault", "velvet", "veranda",
	"vessel", "vine", "viola", "violet", "volcano", "waffle", "wagon", "walnut",
	"walrus", "wasp", "waterfall", "wave", "wharf", "wheat", "whistle", "wick",
	"willow", "windmill", "winter", "wisteria", "wok", "wolf", "wren", "yam",
	"yarn", "yew", "yodel", "yonder", "zenith", "zephyr", "zinc", "zinnia",
}
